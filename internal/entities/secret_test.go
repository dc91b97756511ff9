package entities

import (
	"encoding/json"
	"testing"
)

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{"empty", "", ""},
		{"short", "abcd", "****"},
		{"single char", "x", "****"},
		{"long", "EAAGtoken123456", "****3456"},
		{"five chars", "abcde", "****bcde"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskSecret(tt.secret)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIsMasked(t *testing.T) {
	if !IsMasked("****3456") {
		t.Error("expected masked value to be detected")
	}
	if IsMasked("EAAGtoken123456") {
		t.Error("expected literal value to not be detected as masked")
	}
	if IsMasked("") {
		t.Error("expected empty value to not be detected as masked")
	}
}

func TestSecretResolve(t *testing.T) {
	type payload struct {
		Token Secret `json:"token"`
	}

	tests := []struct {
		name    string
		body    string
		current string
		want    string
	}{
		{"absent field keeps current", `{}`, "stored-secret", "stored-secret"},
		{"null keeps current", `{"token":null}`, "stored-secret", "stored-secret"},
		{"masked keeps current", `{"token":"****cret"}`, "stored-secret", "stored-secret"},
		{"literal replaces current", `{"token":"new-secret"}`, "stored-secret", "new-secret"},
		{"empty string clears current", `{"token":""}`, "stored-secret", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.body), &p); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			got := p.Token.Resolve(tt.current)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPageConfigOverrides(t *testing.T) {
	global := GlobalConfig{DefaultAIModel: "openai/gpt-4o-mini", OpenRouterKey: "global-key"}

	page := PageConfig{}
	if got := page.Model(global); got != "openai/gpt-4o-mini" {
		t.Errorf("expected global model, got %q", got)
	}
	if got := page.APIKey(global); got != "global-key" {
		t.Errorf("expected global key, got %q", got)
	}

	page = PageConfig{AIModel: "anthropic/claude-3-haiku", OpenRouterKey: "page-key"}
	if got := page.Model(global); got != "anthropic/claude-3-haiku" {
		t.Errorf("expected page model override, got %q", got)
	}
	if got := page.APIKey(global); got != "page-key" {
		t.Errorf("expected page key override, got %q", got)
	}
}
