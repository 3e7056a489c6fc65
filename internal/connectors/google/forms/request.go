package forms

import (
	"fmt"

	"google.golang.org/api/forms/v1"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
)

// buildCreateItemRequest translates a domain form item into the Forms API
// request that inserts it at the given index.
func buildCreateItemRequest(index int, item domain.FormItem) (*forms.Request, error) {
	apiItem, err := toAPIItem(item)
	if err != nil {
		return nil, err
	}

	return &forms.Request{
		CreateItem: &forms.CreateItemRequest{
			Item: apiItem,
			Location: &forms.Location{
				Index: int64(index),
				// Index 0 must survive JSON encoding.
				ForceSendFields: []string{"Index"},
			},
		},
	}, nil
}

// toAPIItem maps the domain tagged union onto the Forms API item shape.
func toAPIItem(item domain.FormItem) (*forms.Item, error) {
	switch {
	case item.PageBreak != nil:
		return &forms.Item{
			Title:         item.PageBreak.Title,
			Description:   item.PageBreak.Description,
			PageBreakItem: &forms.PageBreakItem{},
		}, nil

	case item.Image != nil:
		return &forms.Item{
			ImageItem: &forms.ImageItem{
				Image: &forms.Image{
					SourceUri: item.Image.SourceURL,
					AltText:   item.Image.AltText,
				},
			},
		}, nil

	case item.Question != nil:
		return questionItem(item.Question)

	default:
		return nil, fmt.Errorf("%w: form item has no variant set", domain.ErrInvalidInput)
	}
}

func questionItem(q *domain.Question) (*forms.Item, error) {
	apiQ := &forms.Question{}

	switch {
	case q.Text != nil:
		apiQ.TextQuestion = &forms.TextQuestion{
			Paragraph: q.Text.Multiline,
		}

	case q.Scale != nil:
		apiQ.ScaleQuestion = &forms.ScaleQuestion{
			Low:       int64(q.Scale.Low),
			High:      int64(q.Scale.High),
			LowLabel:  q.Scale.LowLabel,
			HighLabel: q.Scale.HighLabel,
			// A low bound of 0 must survive JSON encoding.
			ForceSendFields: []string{"Low"},
		}

	default:
		return nil, fmt.Errorf("%w: question %q has no variant set", domain.ErrInvalidInput, q.Title)
	}

	return &forms.Item{
		Title: q.Title,
		QuestionItem: &forms.QuestionItem{
			Question: apiQ,
		},
	}, nil
}
