package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"career-match/internal/domain"
	"career-match/internal/logger"
	"career-match/internal/questionnaire"
	"career-match/internal/repository"
	"career-match/internal/service"
)

const (
	promptDone = "done"
	promptSkip = "skip"
)

var errAborted = errors.New("questionnaire aborted")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer the questionnaire and print career matches",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("answers", "a", "", "json file with answers ({\"0\": \"agree\", ...}); skips the interactive questionnaire")
	runCmd.Flags().IntP("top", "t", 10, "number of matches to show")
	runCmd.Flags().Float64("threshold", service.DefaultMatchThreshold, "minimum composite score to keep a career")

	viper.BindPFlag("top", runCmd.Flags().Lookup("top"))
	viper.BindPFlag("threshold", runCmd.Flags().Lookup("threshold"))
}

func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(false, viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	logger.Debug("starting with config", zap.Any("config", config))

	cat, err := loadCatalog(config)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}
	engine, err := service.NewMatchEngine(cat, config.Weights, config.Threshold)
	if err != nil {
		logger.Fatal("creating match engine", zap.Error(err))
	}

	bank := questionnaire.New()
	svc := service.NewAssessmentService(logger, bank, engine,
		repository.NewMemoryAssessmentRepository(),
		service.NewMemoryResultCache(),
		service.AssessmentOptions{TopN: config.Top},
	)

	var answers domain.Answers
	if path, _ := cmd.Flags().GetString("answers"); path != "" {
		answers, err = answersFromFile(bank, path)
	} else {
		answers, err = askQuestions(bank)
	}
	if err != nil {
		logger.Fatal("collecting answers", zap.Error(err))
	}

	status := bank.CompletionStatus(answers)
	if !status.IsCompleteEnough {
		logger.Warn("questionnaire is not complete enough, results may be less accurate",
			zap.Float64("completion_percentage", status.CompletionPercentage),
			zap.Bool("all_categories_represented", status.AllCategoriesRepresented),
		)
	}

	assessment, err := svc.Assess(ctx, "", answers)
	if err != nil {
		logger.Fatal("running assessment", zap.Error(err))
	}

	if viper.GetBool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(assessment); err != nil {
			logger.Fatal("encoding assessment", zap.Error(err))
		}
		return
	}
	printAssessment(assessment)
}

// answersFromFile acepta tanto {"answers": {...}} como el mapa de respuestas directo.
func answersFromFile(bank *questionnaire.Bank, path string) (domain.Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	var wrapped struct {
		Answers map[string]json.RawMessage `json:"answers"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Answers != nil {
		return bank.DecodeAnswers(wrapped.Answers)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answers file: %w", err)
	}
	return bank.DecodeAnswers(raw)
}

func askQuestions(bank *questionnaire.Bank) (domain.Answers, error) {
	answers := make(domain.Answers, bank.Len())
	id, ok := bank.NextQuestion(-1, answers)
	for ok {
		q, err := bank.Question(id)
		if err != nil {
			return nil, err
		}
		label := fmt.Sprintf("[%d/%d] %s", id+1, bank.Len(), q.Text)

		var resp domain.Response
		switch q.Type.ResponseKind() {
		case domain.ResponseOrdinal:
			var v string
			v, err = selectOption(label, q.Options)
			resp = domain.OrdinalResponse{Token: v}
		case domain.ResponseChoice:
			var v string
			v, err = selectOption(label, q.Options)
			resp = domain.ChoiceResponse{Option: v}
		case domain.ResponseMultiSelect:
			var vs []string
			vs, err = selectMany(label, q.Options)
			resp = domain.MultiSelectResponse{Options: vs}
		case domain.ResponseRanking:
			var vs []string
			vs, err = rankOptions(label, q.Options)
			resp = domain.RankingResponse{Order: vs}
		}
		switch {
		case errors.Is(err, errSkipped):
		case err != nil:
			return nil, err
		default:
			answers[id] = resp
		}
		id, ok = bank.NextQuestion(id, answers)
	}
	return answers, nil
}

var errSkipped = errors.New("question skipped")

func selectOption(label string, options []domain.Option) (string, error) {
	items := make([]string, 0, len(options)+1)
	for _, o := range options {
		items = append(items, o.Text)
	}
	items = append(items, promptSkip)

	prompt := promptui.Select{Label: label, Items: items, Size: len(items)}
	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("%w: %w", errAborted, err)
	}
	if i == len(options) {
		return "", errSkipped
	}
	return options[i].Value, nil
}

func selectMany(label string, options []domain.Option) ([]string, error) {
	var chosen []string
	remaining := append([]domain.Option(nil), options...)
	for len(remaining) > 0 {
		items := make([]string, 0, len(remaining)+1)
		for _, o := range remaining {
			items = append(items, o.Text)
		}
		items = append(items, promptDone)

		prompt := promptui.Select{
			Label: fmt.Sprintf("%s (selected: %d)", label, len(chosen)),
			Items: items,
			Size:  len(items),
		}
		i, _, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errAborted, err)
		}
		if i == len(remaining) {
			break
		}
		chosen = append(chosen, remaining[i].Value)
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	if len(chosen) == 0 {
		return nil, errSkipped
	}
	return chosen, nil
}

func rankOptions(label string, options []domain.Option) ([]string, error) {
	var order []string
	remaining := append([]domain.Option(nil), options...)
	for len(remaining) > 1 {
		items := make([]string, 0, len(remaining))
		for _, o := range remaining {
			items = append(items, o.Text)
		}
		prompt := promptui.Select{
			Label: fmt.Sprintf("%s (rank %d)", label, len(order)+1),
			Items: items,
			Size:  len(items),
		}
		i, _, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errAborted, err)
		}
		order = append(order, remaining[i].Value)
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	for _, o := range remaining {
		order = append(order, o.Value)
	}
	return order, nil
}

func printAssessment(a domain.Assessment) {
	fmt.Println(a.Profile.Description)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRAIT\tSCORE\tLEVEL")
	for _, d := range a.TraitDetails {
		fmt.Fprintf(w, "%s\t%.2f\t%s\n", d.Name, a.Traits.Score(d.Trait), d.Level)
	}
	w.Flush()
	fmt.Println()

	if len(a.Matches) == 0 {
		fmt.Println("No careers above the match threshold.")
		return
	}
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCAREER\tSCORE\tLEVEL\tCONFIDENCE\tGROWTH")
	for i, m := range a.Matches {
		fmt.Fprintf(w, "%d\t%s\t%.3f\t%s\t%s\t%s\n", i+1, m.Career.Title, m.MatchScore, m.MatchLevel, m.ConfidenceLevel, m.GrowthPotential)
	}
	w.Flush()

	if a.ActionPlan != nil {
		fmt.Println()
		fmt.Printf("Growth path for %s: %s\n", a.ActionPlan.CareerTitle, strings.Join(a.ActionPlan.GrowthPath, " -> "))
		for _, step := range a.ActionPlan.NextSteps {
			fmt.Printf("  - %s\n", step)
		}
	}
}
