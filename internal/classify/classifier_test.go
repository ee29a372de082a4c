package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		filename string
		want     Category
	}{
		{
			name:    "invoice content is financial",
			content: "Please find attached the invoice for services rendered.",
			want:    CategoryFinancial,
		},
		{
			name:    "contract content is legal",
			content: "This agreement sets out the terms between the parties.",
			want:    CategoryLegal,
		},
		{
			name:    "resume content is hr",
			content: "Experienced engineer seeking new role. Resume attached.",
			want:    CategoryHR,
		},
		{
			name:    "api docs are technical",
			content: "The api exposes three endpoints for ingestion.",
			want:    CategoryTechnical,
		},
		{
			name:    "no keywords falls back to general",
			content: "The quick brown fox jumps over the lazy dog.",
			want:    CategoryGeneral,
		},
		{
			name:    "financial outranks legal",
			content: "This contract specifies the payment schedule.",
			want:    CategoryFinancial,
		},
		{
			name:    "legal outranks hr",
			content: "Employee liability is limited per this policy.",
			want:    CategoryLegal,
		},
		{
			name:    "hr outranks technical",
			content: "The hiring guide for software interviews.",
			want:    CategoryHR,
		},
		{
			name:     "filename alone can classify",
			content:  "lorem ipsum dolor sit amet",
			filename: "invoice_march.pdf",
			want:     CategoryFinancial,
		},
		{
			name:    "matching is case-insensitive",
			content: "TOTAL AMOUNT DUE: $400",
			want:    CategoryFinancial,
		},
		{
			name: "empty content is general",
			want: CategoryGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.content, tt.filename))
		})
	}
}

func TestClassify_IsPure(t *testing.T) {
	// Same inputs always give the same answer.
	for i := 0; i < 3; i++ {
		assert.Equal(t, CategoryFinancial, Classify("budget review", "q3.txt"))
	}
}
