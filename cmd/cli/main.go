package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"catalogbot/internal/config"
	"catalogbot/internal/logger"
	"catalogbot/internal/model"
	"catalogbot/internal/repository"
	"catalogbot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zl.Sync()

	repo, err := repository.NewCatalogRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		zl.Fatalw("failed to connect to database", "error", err)
	}
	defer repo.Close()

	llm := service.NewLLMClient(&cfg.LLM, zl)
	scorer := service.NewSimilarityOracle(llm, zl)
	classifier := service.NewClassifier(scorer, model.DefaultScenarios(), zl)
	extractor := service.NewExtractor(llm, zl)
	fallback := service.NewFallbackChat(llm, zl)
	router := service.NewRouter(classifier, extractor, repo, fallback, cfg.Chat.ConfidenceThreshold, zl)

	fmt.Println("Chatbot đã sẵn sàng.")
	zl.Infow("chatbot ready")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Bạn: ")
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()

		if strings.ToLower(strings.TrimSpace(input)) == "quit" {
			zl.Infow("user closed the chatbot")
			break
		}

		response := router.Process(context.Background(), input)
		fmt.Printf("Chatbot: %s\n", response)
	}
}
