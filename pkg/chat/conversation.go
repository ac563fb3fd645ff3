package chat

// Conversation is the append-only message history for one session. All
// operations are value-based: AddMessage returns a new Conversation and never
// mutates the receiver, so history can never be reordered or edited.
type Conversation struct {
	Messages []Message
	UserID   string
}

func NewConversation(userID string) Conversation {
	return Conversation{
		Messages: make([]Message, 0),
		UserID:   userID,
	}
}

func AddMessage(conv Conversation, msg Message) Conversation {
	messages := make([]Message, len(conv.Messages)+1)
	copy(messages, conv.Messages)
	messages[len(conv.Messages)] = msg

	return Conversation{
		Messages: messages,
		UserID:   conv.UserID,
	}
}

func GetMessages(conv Conversation) []Message {
	result := make([]Message, len(conv.Messages))
	copy(result, conv.Messages)
	return result
}

func GetMessageCount(conv Conversation) int {
	return len(conv.Messages)
}

func GetLastMessage(conv Conversation) (Message, bool) {
	if len(conv.Messages) == 0 {
		return Message{}, false
	}
	return conv.Messages[len(conv.Messages)-1], true
}

func GetLastAssistantMessage(conv Conversation) (Message, bool) {
	for i := len(conv.Messages) - 1; i >= 0; i-- {
		msg := conv.Messages[i]
		if msg.IsAssistant() {
			return msg, true
		}
	}
	return Message{}, false
}

func GetLastUserMessage(conv Conversation) (Message, bool) {
	for i := len(conv.Messages) - 1; i >= 0; i-- {
		msg := conv.Messages[i]
		if msg.IsUser() {
			return msg, true
		}
	}
	return Message{}, false
}

func GetMessagesByRole(conv Conversation, role string) []Message {
	var result []Message
	for _, msg := range conv.Messages {
		if msg.Role == role {
			result = append(result, msg)
		}
	}
	return result
}

func IsEmpty(conv Conversation) bool {
	return len(conv.Messages) == 0
}
