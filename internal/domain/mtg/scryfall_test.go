package mtg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Query_Validate(t *testing.T) {
	tests := []struct {
		name    string
		q       Query
		wantErr error
	}{
		{name: "nothing", wantErr: ErrMissingName},
		{name: "set only", q: Query{Set: "neo"}, wantErr: ErrMissingNameOrNum},
		{name: "number without set", q: Query{Name: "Opt", CollectorNumber: 12}, wantErr: ErrMissingSet},
		{name: "name", q: Query{Name: "Opt"}},
		{name: "name in set", q: Query{Name: "Opt", Set: "xln"}},
		{name: "set and number", q: Query{Set: "xln", CollectorNumber: 65}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.q.Validate(), tt.wantErr)
		})
	}
}

func Test_Query_path(t *testing.T) {
	assert.Equal(t, "/cards/named?fuzzy=jace+beleren", Query{Name: "jace beleren"}.path())
	assert.Equal(t, "/cards/named?fuzzy=opt&set=xln", Query{Name: "opt", Set: "XLN"}.path())
	assert.Equal(t, "/cards/xln/65", Query{Set: "XLN", CollectorNumber: 65}.path())
}

const optJSON = `{
	"object": "card",
	"name": "Opt",
	"scryfall_uri": "https://scryfall.com/card/xln/65/opt",
	"mana_cost": "{U}",
	"type_line": "Instant",
	"oracle_text": "Scry 1.\nDraw a card.",
	"set": "xln",
	"set_name": "Ixalan",
	"games": ["paper", "mtgo"],
	"image_status": "highres_scan",
	"image_uris": {"border_crop": "https://cards.scryfall.io/border_crop/opt.jpg"},
	"legalities": {"modern": "legal", "standard": "not_legal"}
}`

func Test_Client_Card(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		switch r.URL.Query().Get("fuzzy") {
		case "opt":
			_, _ = w.Write([]byte(optJSON))
		case "nothing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"object":"error","status":404,"code":"not_found","details":"No cards found matching \"nothing\""}`))
		case "down":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		case "slow":
			time.Sleep(200 * time.Millisecond)
		}
	}))
	defer srv.Close()

	c := NewClient(50*time.Millisecond, srv.URL+"/")
	ctx := context.Background()

	card, err := c.Card(ctx, Query{Name: "opt"})
	require.NoError(t, err)
	assert.Equal(t, "Opt", card.Name)
	assert.Equal(t, []string{"paper", "mtgo"}, card.Games)
	assert.Equal(t, "legal", card.Legalities["modern"])

	_, err = c.Card(ctx, Query{Name: "nothing"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, `No cards found matching "nothing"`, apiErr.Details)

	_, err = c.Card(ctx, Query{Name: "down"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Card(ctx, Query{Name: "slow"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Card(ctx, Query{})
	assert.ErrorIs(t, err, ErrMissingName)
}
