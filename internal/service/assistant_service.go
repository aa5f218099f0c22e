package service

import (
	"strings"

	"twigane_backend/internal/model"
	"twigane_backend/internal/repository"
	"twigane_backend/internal/util"
)

// AssistantService powers TwigBot, the rule-based coding mentor. Replies come
// from a keyword table; the first matching rule wins.
type AssistantService struct {
	chatRepo *repository.ChatRepository
}

func NewAssistantService(chatRepo *repository.ChatRepository) *AssistantService {
	return &AssistantService{chatRepo: chatRepo}
}

type replyRule struct {
	keywords []string
	reply    string
}

var twigBotRules = []replyRule{
	{
		keywords: []string{"error", "bug"},
		reply: `I can help you debug! Here are some common debugging steps:

1. **Check the console** - Look for error messages in your browser's developer console
2. **Verify syntax** - Make sure all brackets, parentheses, and semicolons are properly placed
3. **Check variable names** - Ensure you're using the correct variable names and they're in scope
4. **Test step by step** - Break down your code into smaller pieces and test each part

Can you share the specific error message or the code you're having trouble with?`,
	},
	{
		keywords: []string{"html"},
		reply: `Great question about HTML! Here are some key points:

**HTML Basics:**
- HTML uses tags to structure content: ` + "`<tag>content</tag>`" + `
- Always close your tags (except self-closing ones like ` + "`<img>`" + `)
- Use semantic tags like ` + "`<header>`, `<main>`, `<section>`" + ` for better structure

**Common tags:**
- ` + "`<h1>` to `<h6>`" + ` for headings
- ` + "`<p>`" + ` for paragraphs
- ` + "`<a>`" + ` for links
- ` + "`<img>`" + ` for images

What specific HTML concept would you like me to explain further?`,
	},
	{
		keywords: []string{"css"},
		reply: `CSS is powerful for styling! Here's what you should know:

**CSS Syntax:**
` + "```css\nselector {\n  property: value;\n}\n```" + `

**Best practices:**
- Keep specificity low
- Use semantic naming

What CSS topic would you like to dive deeper into?`,
	},
	{
		keywords: []string{"javascript", "js"},
		reply: `JavaScript is the programming language of the web! Here are fundamentals:

**Variables:**
` + "```javascript\nlet name = \"TwigBot\";\nconst age = 25;\n```" + `

**Functions:**
` + "```javascript\nfunction greet(name) {\n  return `Hello, ${name}!`;\n}\n```" + `

**Common methods:**
- Arrays: ` + "`.map()`, `.filter()`, `.forEach()`" + `
- DOM: ` + "`document.querySelector()`, `addEventListener()`" + `

What JavaScript concept are you working on?`,
	},
}

const twigBotFallback = `That's a great question! I'm here to help you learn and understand programming concepts better.

Here are some ways I can assist you:
- **Explain concepts** - Ask me about HTML, CSS, JavaScript, or any programming topic
- **Debug code** - Share your code and I'll help you find and fix issues
- **Provide examples** - I can show you practical code examples
- **Guide problem-solving** - I'll help you break down complex problems

Feel free to ask me anything specific about coding, and I'll provide detailed, helpful explanations!`

// ComposeReply picks TwigBot's answer for a message.
func ComposeReply(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range twigBotRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return twigBotFallback
}

// WelcomeMessage is the assistant's opening line for a new session. A
// non-empty topic personalizes it.
func WelcomeMessage(topic string) string {
	if topic != "" {
		return "Hi! I'm TwigBot, your AI coding mentor. I'm here to help you with " + topic + ". What would you like to learn or work on?"
	}
	return "Hi! I'm TwigBot, your AI coding mentor. I'm here to help you learn programming, debug code, understand concepts, and solve problems. What can I help you with today?"
}

type StartSessionInput struct {
	Name  string `json:"name" binding:"omitempty,max=255"`
	Topic string `json:"topic" binding:"omitempty,max=255"`
}

// StartSession opens a session and seeds it with the welcome message.
func (s *AssistantService) StartSession(userID uint, input StartSessionInput) (*model.ChatSession, []model.ChatMessage, error) {
	session := &model.ChatSession{UserID: userID}
	if input.Name != "" {
		session.Name = input.Name
	}
	if err := s.chatRepo.CreateSession(session); err != nil {
		return nil, nil, err
	}

	welcome := &model.ChatMessage{
		SessionID: session.ID,
		Role:      model.RoleAssistant,
		Content:   WelcomeMessage(input.Topic),
	}
	if err := s.chatRepo.AddMessage(welcome); err != nil {
		return nil, nil, err
	}

	return session, []model.ChatMessage{*welcome}, nil
}

func (s *AssistantService) ListSessions(userID uint) ([]model.ChatSession, error) {
	return s.chatRepo.FindSessionsByUser(userID)
}

func (s *AssistantService) GetMessages(userID uint, sessionID string) ([]model.ChatMessage, error) {
	session, err := s.chatRepo.FindSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return s.chatRepo.FindMessages(sessionID)
}

type SendMessageInput struct {
	Content string `json:"content" binding:"required"`
}

// SendMessage stores the learner's message and TwigBot's reply, returning
// both in order.
func (s *AssistantService) SendMessage(userID uint, sessionID string, input SendMessageInput) ([]model.ChatMessage, error) {
	session, err := s.chatRepo.FindSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	userMsg := &model.ChatMessage{
		SessionID: sessionID,
		Role:      model.RoleUser,
		Content:   input.Content,
	}
	if err := s.chatRepo.AddMessage(userMsg); err != nil {
		return nil, err
	}

	botMsg := &model.ChatMessage{
		SessionID: sessionID,
		Role:      model.RoleAssistant,
		Content:   ComposeReply(input.Content),
	}
	if err := s.chatRepo.AddMessage(botMsg); err != nil {
		return nil, err
	}

	return []model.ChatMessage{*userMsg, *botMsg}, nil
}
