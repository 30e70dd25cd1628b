package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jfandel/statkit/internal/config"
	"github.com/jfandel/statkit/internal/repositories/statdefs"
	"github.com/jfandel/statkit/internal/scheduler"
	"github.com/jfandel/statkit/internal/services/registry"
	"github.com/jfandel/statkit/internal/stats"
	"github.com/jfandel/statkit/internal/telemetry"
	"github.com/jfandel/statkit/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Definitions live in memory unless a Redis URL is provided
	var repo statdefs.Repository = statdefs.NewInMemory()
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory definitions")
		} else {
			client := redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if pingErr := client.Ping(ctx).Err(); pingErr != nil {
				cancel()
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory definitions")
			} else {
				cancel()
				log.Println("Using Redis for stat definitions")
				repo = statdefs.NewRedis(client, uuid.NewGoogleUUIDGenerator(), statdefs.ClockTimeProvider{})
				defer func() { _ = client.Close() }()
			}
		}
	}

	sched := scheduler.NewTimerScheduler()
	system := stats.NewSystem(sched, telemetry.NewLogSink())
	svc := registry.NewService(&registry.ServiceConfig{
		Repository: repo,
		System:     system,
	})

	ctx := context.Background()

	healthDef, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
		Name: "health",
		Kind: statdefs.KindRange,
		Base: 50,
		Min:  0,
		Max:  120,
	})
	if err != nil {
		log.Fatalf("Failed to save health definition: %v", err)
	}

	strengthDef, err := svc.SaveDefinition(ctx, &registry.SaveDefinitionInput{
		Name: "strength",
		Kind: statdefs.KindElastic,
		Base: 10,
		Modifiers: []statdefs.ModifierDef{
			{Amount: 2, Priority: 0, Origin: "racial_bonus"},
		},
	})
	if err != nil {
		log.Fatalf("Failed to save strength definition: %v", err)
	}

	health, err := svc.Materialize(ctx, healthDef.ID)
	if err != nil {
		log.Fatalf("Failed to materialize health: %v", err)
	}
	strength, err := svc.Materialize(ctx, strengthDef.ID)
	if err != nil {
		log.Fatalf("Failed to materialize strength: %v", err)
	}

	log.Printf("health=%v strength=%v", health.Value().Amount(), strength.Value().Amount())

	// Scripted scenario: a short strength buff plus a health regen pulse.
	// All engine mutation runs under the scheduler mutex.
	sched.Sync(func() {
		strTarget := strength.Value().(stats.ModifierTarget)
		buff := system.NewTempModifier(strTarget, 5, "potion_of_might", 1, cfg.Sim.BuffDuration)
		strTarget.AddModifier(buff)
		log.Printf("buff applied: strength=%v", strength.Value().Amount())

		healthTarget := health.Value().(stats.ModifierTarget)
		regen, tickErr := system.NewTickingModifier(healthTarget, 2, "regen_aura", 0, cfg.Sim.RegenDuration, cfg.Sim.RegenInterval)
		if tickErr != nil {
			log.Fatalf("Failed to create regen modifier: %v", tickErr)
		}
		healthTarget.AddModifier(regen)
	})

	wait := cfg.Sim.RegenDuration
	if cfg.Sim.BuffDuration > wait {
		wait = cfg.Sim.BuffDuration
	}
	time.Sleep(wait + cfg.Sim.WaitPadding)

	sched.Sync(func() {
		log.Printf("final: health=%v strength=%v", health.Value().Amount(), strength.Value().Amount())
	})
}
