package main

// Inspect the prompt built for a quiz payload, or run the full pipeline:
//   go run ./cmd/prompttest -quiz quiz.json
//   go run ./cmd/prompttest -quiz quiz.json -generate

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"beautips-backend/internal/bootstrap"
	"beautips-backend/internal/llm"
	"beautips-backend/internal/recommend"
	"beautips-backend/internal/shared/config"
)

func main() {
	cfg := config.Load()

	quizPath := flag.String("quiz", "", "Path to quiz payload JSON")
	contextPath := flag.String("context", "", "Path to a pre-rendered product context (skips retrieval)")
	outPath := flag.String("out", "", "Path to write output (optional)")
	generate := flag.Bool("generate", false, "Call the generative model and print the validated result")
	flag.Parse()

	if strings.TrimSpace(*quizPath) == "" {
		exitErr("quiz path is required")
	}
	quizBytes, err := os.ReadFile(*quizPath)
	if err != nil {
		exitErr(fmt.Sprintf("read quiz: %v", err))
	}
	var questionnaire map[string]any
	if err := json.Unmarshal(quizBytes, &questionnaire); err != nil {
		exitErr(fmt.Sprintf("parse quiz: %v", err))
	}

	ctx := context.Background()
	output := ""

	if *generate {
		app, err := bootstrap.Build(cfg)
		if err != nil {
			exitErr(fmt.Sprintf("bootstrap: %v", err))
		}
		if _, err := app.RecommendService.RebuildIndex(ctx); err != nil {
			exitErr(fmt.Sprintf("rebuild index: %v", err))
		}
		result := app.RecommendService.GenerateRecommendations(ctx, questionnaire)
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			exitErr(fmt.Sprintf("marshal result: %v", err))
		}
		output = string(pretty)
	} else {
		relevantProducts := "(retrieval skipped)"
		if strings.TrimSpace(*contextPath) != "" {
			contextBytes, err := os.ReadFile(*contextPath)
			if err != nil {
				exitErr(fmt.Sprintf("read context: %v", err))
			}
			relevantProducts = string(contextBytes)
		}

		profile := recommend.ExtractProfile(questionnaire)
		userContext, _ := json.Marshal(questionnaire)
		prompt, template := llm.BuildScenarioPrompt(llm.PromptInput{
			Scenario:         profile.Scenario,
			SkinType:         profile.SkinType,
			Conditions:       profile.Conditions,
			BudgetLabel:      profile.BudgetLabel(),
			UserContext:      string(userContext),
			RelevantProducts: relevantProducts,
		})
		output = fmt.Sprintf("template: %s\n\n%s", template, prompt)
	}

	if strings.TrimSpace(*outPath) != "" {
		if err := os.WriteFile(*outPath, []byte(output), 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
		return
	}
	fmt.Println(output)
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
