package notes_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-footnotes/notes"
	"github.com/google/uuid"
)

func TestCreateFootnoteRequest_Validate(t *testing.T) {
	pageID := uuid.New()

	cases := []struct {
		name    string
		req     notes.CreateFootnoteRequest
		wantErr error
	}{
		{
			name: "valid",
			req:  notes.CreateFootnoteRequest{PageID: pageID, Text: "a note"},
		},
		{
			name:    "missing page",
			req:     notes.CreateFootnoteRequest{Text: "a note"},
			wantErr: notes.ErrPageRequired,
		},
		{
			name:    "missing text",
			req:     notes.CreateFootnoteRequest{PageID: pageID},
			wantErr: notes.ErrTextRequired,
		},
		{
			name:    "text too long",
			req:     notes.CreateFootnoteRequest{PageID: pageID, Text: strings.Repeat("x", notes.MaxTextLength+1)},
			wantErr: notes.ErrTextTooLong,
		},
		{
			name: "text at limit",
			req:  notes.CreateFootnoteRequest{PageID: pageID, Text: strings.Repeat("x", notes.MaxTextLength)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateFootnoteRequest_Validate(t *testing.T) {
	if err := (notes.UpdateFootnoteRequest{Text: "x"}).Validate(); !errors.Is(err, notes.ErrFootnoteRequired) {
		t.Fatalf("expected ErrFootnoteRequired, got %v", err)
	}
	if err := (notes.UpdateFootnoteRequest{ID: uuid.New()}).Validate(); !errors.Is(err, notes.ErrTextRequired) {
		t.Fatalf("expected ErrTextRequired, got %v", err)
	}
	if err := (notes.UpdateFootnoteRequest{ID: uuid.New(), Text: "x"}).Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestDeleteFootnoteRequest_Validate(t *testing.T) {
	if err := (notes.DeleteFootnoteRequest{}).Validate(); !errors.Is(err, notes.ErrFootnoteRequired) {
		t.Fatalf("expected ErrFootnoteRequired, got %v", err)
	}
	if err := (notes.DeleteFootnoteRequest{ID: uuid.New()}).Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestFootnoteNotFoundError_Unwrap(t *testing.T) {
	err := &notes.FootnoteNotFoundError{Key: "abc"}
	if !errors.Is(err, notes.ErrFootnoteNotFound) {
		t.Fatal("FootnoteNotFoundError should unwrap to ErrFootnoteNotFound")
	}
	if !strings.Contains(err.Error(), "abc") {
		t.Fatalf("Error() = %q, want key in message", err.Error())
	}
}
