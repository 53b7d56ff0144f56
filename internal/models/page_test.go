package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     PageRequest
		wantErr bool
	}{
		{"valid", PageRequest{Page: 1, Size: 10}, false},
		{"zero page", PageRequest{Page: 0, Size: 10}, true},
		{"negative page", PageRequest{Page: -1, Size: 10}, true},
		{"zero size", PageRequest{Page: 1, Size: 0}, true},
		{"negative size", PageRequest{Page: 1, Size: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var appErr *AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, CodeValidation, appErr.Code)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PageRequest{Page: 1, Size: 10}.Offset())
	assert.Equal(t, 10, PageRequest{Page: 2, Size: 10}.Offset())
	assert.Equal(t, 50, PageRequest{Page: 11, Size: 5}.Offset())
}

func TestRankForPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		points float64
		want   string
	}{
		{0, "Newcomer"},
		{99, "Newcomer"},
		{100, "Member"},
		{500, "Regular"},
		{1000, "Veteran"},
		{2500, "Master"},
		{5000, "Grandmaster"},
		{10000, "Legend"},
		{123456, "Legend"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RankForPoints(tt.points), "points=%v", tt.points)
	}
}
