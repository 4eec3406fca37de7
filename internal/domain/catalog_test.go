package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfessional_CanPerform(t *testing.T) {
	tests := []struct {
		name        string
		specialties []string
		category    string
		want        bool
	}{
		{name: "exact match ignoring case", specialties: []string{"Manicure"}, category: "manicure", want: true},
		{name: "category contains specialty", specialties: []string{"unha"}, category: "Unhas em gel", want: true},
		{name: "specialty contains category", specialties: []string{"Pedicure completa"}, category: "pedicure", want: true},
		{name: "no overlap", specialties: []string{"cabelo"}, category: "manicure", want: false},
		{name: "no specialties", specialties: nil, category: "manicure", want: false},
		{name: "empty category", specialties: []string{"manicure"}, category: "", want: false},
		{name: "blank specialty ignored", specialties: []string{" "}, category: "manicure", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Professional{Specialties: tt.specialties}
			assert.Equal(t, tt.want, p.CanPerform(&Service{Category: tt.category}))
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 2, MinStock: 2}).IsLowStock())
	assert.True(t, (&Product{Stock: 0, MinStock: 1}).IsLowStock())
	assert.False(t, (&Product{Stock: 5, MinStock: 2}).IsLowStock())
	assert.Equal(t, 7.5, (&Product{Price: 20, Cost: 12.5}).Margin())
}
