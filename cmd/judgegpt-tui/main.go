package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"judgegpt/internal/client"
	"judgegpt/internal/config"
	"judgegpt/internal/models"
	"judgegpt/internal/quizview"
)

func main() {
	configPath := flag.String("config", "judgegpt.yaml", "path to client config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	api := client.New(cfg.ServerURL)
	labels := quizview.LabelsFromMap(cfg.Labels)
	ctx := context.Background()

	articles, err := api.FetchQuiz(ctx, cfg.UserUID, cfg.Locale)
	if err != nil {
		log.Fatalf("Failed to fetch quiz: %v", err)
	}

	// The caller owns the session: it advances the index between articles
	// and resets the selector state by constructing a fresh view per article.
	session := models.QuizSession{Articles: articles}
	correct := 0

	for !session.Done() {
		var answer quizview.Answer
		shownAt := time.Now()

		model := quizview.NewModel(session, labels, func(a quizview.Answer) {
			answer = a
		})
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			log.Fatalf("Quiz view failed: %v", err)
		}
		view, ok := final.(quizview.Model)
		if !ok || view.Aborted() || !view.Submitted() {
			fmt.Println("Quiz aborted.")
			os.Exit(0)
		}

		isCorrect, err := api.SubmitResponse(ctx, models.UserResponse{
			UserUID:              cfg.UserUID,
			ArticleUID:           session.Current().UID,
			UserRespondedIsHuman: answer.HumanOptionSelected,
			UserRespondedIsFake:  answer.IsFakeSelected,
			TimeToRespond:        float64(time.Since(shownAt).Milliseconds()),
		})
		if err != nil {
			log.Fatalf("Failed to submit answer: %v", err)
		}
		if isCorrect {
			correct++
			fmt.Println("Correct!")
		} else {
			fmt.Println("Not quite.")
		}

		session.CurrentArticleIndex++
	}

	fmt.Printf("Quiz complete: %d/%d correct.\n", correct, len(session.Articles))
}
