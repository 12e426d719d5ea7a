package agent

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/bookkeeping"
	"github.com/etnz/bookkeeping/docs"
	"github.com/etnz/bookkeeping/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user keeps a personal ledger of income and expenses. They come to understand
			where their money goes, how much they can save and what the next weeks may look like.

			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request. Never invent figures, ask the Bookkeeper.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAdvisor returns an expert in personal finance grounded on Google Search.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is a personal finance advisor. It knows about budgeting, saving habits
		and how to read consumption ratios like the Engel coefficient.
		It does not know the user's ledger.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance. You give practical advice on budgeting and
			saving. You leverage Google Search to ground your assertions.
			`}}},
		},
	}
}

// NewBookkeeper returns the expert in charge of the ledger.
// Its tools read s and compute with e, amounts are displayed with o.
func NewBookkeeper(s *bookkeeping.Store, e *bookkeeping.Engine, o renderer.Options) *Expert {
	lib := Tools(s, e, o)
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It reads the user's ledger of income and expense records.
		It can list records, compute totals, forecasts and economic indicators over any date range.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's ledger.
				You use the Tools to extract figures from the ledger, you never make them up.
				When a tool reports insufficient data, say so plainly.

				` + must(docs.GetTopics("ledger", "forecast", "indicators")),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

// Tools returns the functions of the Bookkeeper.
func Tools(s *bookkeeping.Store, e *bookkeeping.Engine, o renderer.Options) []Function {
	rangeArgs := map[string]*genai.Schema{
		"start": {
			Type:        genai.TypeString,
			Description: "First day of the range, YYYY-MM-DD. Empty means unbounded.",
		},
		"end": {
			Type:        genai.TypeString,
			Description: "Last day of the range, YYYY-MM-DD. Empty means unbounded.",
		},
	}
	markdown := &genai.Schema{Type: genai.TypeString, Description: "A markdown document."}

	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Totals",
				Description: "Totals returns the total income, total expense and balance of the records in a date range.",
				Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: rangeArgs},
				Response:    markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				records, err := rangeOf(s, args)
				if err != nil {
					return failure(id, "Totals", err)
				}
				return success(id, "Totals", renderer.SummaryMarkdown("Totals", bookkeeping.Summarize(records), o))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Records",
				Description: "Records lists the records of a date range, with their id, amount, kind, date and description.",
				Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: rangeArgs},
				Response:    markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				records, err := rangeOf(s, args)
				if err != nil {
					return failure(id, "Records", err)
				}
				return success(id, "Records", renderer.RecordsMarkdown("Records", records, o))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Forecast",
				Description: "Forecast extrapolates the linear trend of daily income and expense totals of a date range.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"start": rangeArgs["start"],
						"end":   rangeArgs["end"],
						"days": {
							Type:        genai.TypeInteger,
							Description: "Number of steps to forecast, 30 by default.",
						},
					},
				},
				Response: markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				records, err := rangeOf(s, args)
				if err != nil {
					return failure(id, "Forecast", err)
				}
				days, err := intArg(args, "days", 30)
				if err != nil {
					return failure(id, "Forecast", err)
				}
				f, err := e.ForecastOf(records, days)
				if errors.Is(err, bookkeeping.ErrInsufficientData) {
					return success(id, "Forecast", renderer.Unavailable("Forecast", "At least two distinct dates of income and of expense are needed."))
				}
				if err != nil {
					return failure(id, "Forecast", err)
				}
				return success(id, "Forecast", renderer.ForecastMarkdown(f, o))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Profile",
				Description: "Profile computes the Engel coefficient, APC and MPC of a date range, with their interpretation.",
				Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: rangeArgs},
				Response:    markdown,
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				records, err := rangeOf(s, args)
				if err != nil {
					return failure(id, "Profile", err)
				}
				p, err := e.ProfileOf(records)
				if errors.Is(err, bookkeeping.ErrInsufficientData) {
					return success(id, "Profile", renderer.Unavailable("Economic profile", "No records in this range."))
				}
				if err != nil {
					return failure(id, "Profile", err)
				}
				return success(id, "Profile", renderer.ProfileMarkdown(p, o))
			},
		},
	}
}

func rangeOf(s *bookkeeping.Store, args map[string]any) ([]bookkeeping.Record, error) {
	start, err := stringArg(args, "start")
	if err != nil {
		return nil, err
	}
	end, err := stringArg(args, "end")
	if err != nil {
		return nil, err
	}
	return s.Range(start, end)
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return "", nil
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return str, nil
}

// intArg reads an integer argument, JSON numbers being decoded as float64.
func intArg(args map[string]any, name string, def int) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", name, n)
		}
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer, got %q", name, n)
		}
		return i, nil
	}
	return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
