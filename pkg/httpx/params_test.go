package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mealio/takeout/pkg/httpx"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{name: "single", raw: "7", want: []int64{7}},
		{name: "many", raw: "1,2,3", want: []int64{1, 2, 3}},
		{name: "spaces", raw: " 1 , 2 ", want: []int64{1, 2}},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "not a number", raw: "1,x", wantErr: true},
		{name: "trailing comma", raw: "1,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := httpx.ParseIDList(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestActorID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   int64
	}{
		{name: "valid", header: "42", want: 42},
		{name: "missing", header: "", want: 0},
		{name: "garbage", header: "abc", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				c.Request.Header.Set("X-Actor-ID", tt.header)
			}
			if got := httpx.ActorID(c); got != tt.want {
				t.Fatalf("want %d, got %d", tt.want, got)
			}
		})
	}
}
