package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeReply(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"error keyword", "I got an error in my code", "debug"},
		{"bug keyword", "there is a BUG somewhere", "debug"},
		{"html keyword", "how do HTML tags work?", "HTML Basics"},
		{"css keyword", "explain css selectors", "CSS Syntax"},
		{"javascript keyword", "teach me JavaScript", "programming language of the web"},
		{"js abbreviation", "what is js?", "programming language of the web"},
		{"fallback", "tell me about recursion", "great question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, ComposeReply(tt.message), tt.contains)
		})
	}
}

func TestComposeReplyFirstMatchWins(t *testing.T) {
	// "error" is checked before "html", matching the rule order.
	reply := ComposeReply("error in my html")
	assert.Contains(t, reply, "debug")
}

func TestWelcomeMessage(t *testing.T) {
	assert.Contains(t, WelcomeMessage(""), "TwigBot")
	assert.Contains(t, WelcomeMessage("CSS Grid"), "CSS Grid")
}
