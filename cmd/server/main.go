package main

import (
	"log"

	"github.com/sidimedmar/profeleve/internal/cli"

	_ "github.com/sidimedmar/profeleve/docs"
)

// @title           KoboQuiz API
// @version         1.0
// @description     In-memory quiz tool: professors author and publish quizzes, students answer them, the dashboard aggregates results
// @host            localhost:8080
// @BasePath        /

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("failed to start: %v", err)
	}
}
