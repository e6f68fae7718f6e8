package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"TerraVox/internal/logger"
	"TerraVox/internal/mesh"
	"TerraVox/internal/terrain"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON terrain config (defaults apply when omitted)")
	seed := flag.Int64("seed", 0, "override the terrain seed")
	meshOut := flag.String("mesh", "terrain.mesh.gz", "output path for the binary mesh")
	objOut := flag.String("obj", "", "optional OBJ export path")
	flag.Parse()

	logger.Init()

	cfg := terrain.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = terrain.LoadConfig(*configPath)
		if err != nil {
			logger.Log.Fatal("could not load config", zap.String("path", *configPath), zap.Error(err))
		}
	}

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if seedSet {
		s := *seed
		cfg.Seed = &s
	}

	ter, err := terrain.New(cfg)
	if err != nil {
		logger.Log.Fatal("invalid terrain configuration", zap.Error(err))
	}

	opts := mesh.Options{
		CubeHeight:   cfg.CubeHeight,
		GlitchChance: cfg.GlitchChance,
	}
	if cfg.Seed != nil {
		opts.Seed = *cfg.Seed
	}
	m := mesh.Build(ter.Field(), opts)

	if err := writeMesh(*meshOut, m); err != nil {
		logger.Log.Fatal("could not write mesh", zap.String("path", *meshOut), zap.Error(err))
	}

	if *objOut != "" {
		if err := writeOBJ(*objOut, m); err != nil {
			logger.Log.Fatal("could not write OBJ", zap.String("path", *objOut), zap.Error(err))
		}
	}

	logger.Log.Info("terrain written",
		zap.String("mesh", *meshOut),
		zap.Int("quads", m.QuadCount()),
		zap.Float64("height_at_origin", ter.HeightAt(0, 0)),
		zap.Bool("obstacle_at_origin", ter.IsObstacle(0, 0)))
}

func writeMesh(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := mesh.Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeOBJ(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.WriteOBJ(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
