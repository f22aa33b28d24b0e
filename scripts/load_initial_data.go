package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lfg-backend/internal/auth"
	"lfg-backend/internal/config"
	"lfg-backend/internal/database"
	"lfg-backend/internal/database/models"
	apperrors "lfg-backend/internal/errors"
	"lfg-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed files
type PlayerData struct {
	Handle     string          `yaml:"handle"`
	Tag        string          `yaml:"tag"`
	Characters []CharacterData `yaml:"characters,omitempty"`
}

type CharacterData struct {
	Name            string `yaml:"name"`
	Realm           string `yaml:"realm"`
	ClassName       string `yaml:"class_name"`
	ItemLevel       int    `yaml:"item_level"`
	ReputationScore *int   `yaml:"reputation_score,omitempty"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

func main() {
	log.Println("Loading initial players from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	players, err := loadPlayers("scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	ctx := context.Background()
	playerRepo := repository.NewPlayerRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())

	playersCreated, charactersCreated := 0, 0
	for _, data := range players {
		player, created, err := createPlayer(ctx, playerRepo, data)
		if err != nil {
			log.Fatalf("Failed to create player %s: %v", data.Handle, err)
		}
		if created {
			playersCreated++
		}

		for _, c := range data.Characters {
			created, err := createCharacter(ctx, characterRepo, player, c)
			if err != nil {
				log.Fatalf("Failed to create character %s-%s: %v", c.Name, c.Realm, err)
			}
			if created {
				charactersCreated++
			}
		}

		// Development tokens let the seeded players call the API right away
		if cfg.IsDevelopment() {
			token, err := tokens.GenerateJWT(player.Handle, player.Tag)
			if err != nil {
				log.Fatalf("Failed to sign token for %s: %v", player.Handle, err)
			}
			log.Printf("Token for %s (%s): %s", player.Tag, player.Handle, token)
		}
	}

	log.Printf("Players: %d created, %d total", playersCreated, len(players))
	log.Printf("Characters: %d created", charactersCreated)
	log.Println("Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadPlayers(dataDir string) ([]PlayerData, error) {
	var allPlayers []PlayerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "players") {
			var file PlayersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allPlayers = append(allPlayers, file.Players...)
		}
		return nil
	})

	return allPlayers, err
}

func createPlayer(ctx context.Context, repo *repository.PlayerRepository, data PlayerData) (*models.Player, bool, error) {
	player, err := repo.GetByHandle(ctx, data.Handle)
	if err == nil {
		return player, false, nil // created = false (existing)
	}
	if !errors.Is(err, apperrors.ErrPlayerNotFound) {
		return nil, false, fmt.Errorf("failed to query player: %w", err)
	}

	player = &models.Player{Handle: data.Handle, Tag: data.Tag}
	if err := repo.Create(ctx, player); err != nil {
		return nil, false, err
	}
	return player, true, nil
}

func createCharacter(ctx context.Context, repo *repository.CharacterRepository, player *models.Player, data CharacterData) (bool, error) {
	character := &models.Character{
		PlayerID:        player.ID,
		Name:            data.Name,
		Realm:           data.Realm,
		ClassName:       data.ClassName,
		ItemLevel:       data.ItemLevel,
		ReputationScore: data.ReputationScore,
	}
	if err := repo.Create(ctx, character); err != nil {
		if errors.Is(err, apperrors.ErrCharacterExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
