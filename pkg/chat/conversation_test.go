package chat_test

import (
	"github.com/foliochat/foliochat/pkg/chat"
	"github.com/foliochat/foliochat/pkg/payload"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Conversation", func() {
	Describe("NewConversation", func() {
		It("should create an empty conversation for the user", func() {
			conv := chat.NewConversation("default_user")

			Expect(conv.UserID).To(Equal("default_user"))
			Expect(chat.GetMessages(conv)).To(BeEmpty())
			Expect(chat.IsEmpty(conv)).To(BeTrue())
		})
	})

	Describe("AddMessage", func() {
		It("should add a message immutably", func() {
			original := chat.NewConversation("default_user")
			msg := chat.NewUserMessage("show my portfolio")

			updated := chat.AddMessage(original, msg)

			Expect(chat.GetMessageCount(original)).To(Equal(0))
			Expect(chat.GetMessageCount(updated)).To(Equal(1))
			Expect(updated.UserID).To(Equal("default_user"))

			last, found := chat.GetLastMessage(updated)
			Expect(found).To(BeTrue())
			Expect(last.Payload.Text).To(Equal("show my portfolio"))
		})

		It("should preserve message order", func() {
			conv := chat.NewConversation("default_user")

			conv = chat.AddMessage(conv, chat.NewUserMessage("First"))
			conv = chat.AddMessage(conv, chat.NewAssistantMessage(payload.Text("Second"), ""))
			conv = chat.AddMessage(conv, chat.NewUserMessage("Third"))

			messages := chat.GetMessages(conv)
			Expect(messages).To(HaveLen(3))
			Expect(messages[0].Payload.Text).To(Equal("First"))
			Expect(messages[1].Payload.Text).To(Equal("Second"))
			Expect(messages[2].Payload.Text).To(Equal("Third"))
		})

		It("should grow history by exactly one entry per add", func() {
			conv := chat.NewConversation("default_user")
			for i := 0; i < 5; i++ {
				before := chat.GetMessageCount(conv)
				conv = chat.AddMessage(conv, chat.NewUserMessage("hello"))
				Expect(chat.GetMessageCount(conv)).To(Equal(before + 1))
			}
		})
	})

	Describe("GetMessages", func() {
		It("should return an independent copy of messages", func() {
			conv := chat.NewConversation("default_user")
			conv = chat.AddMessage(conv, chat.NewUserMessage("Hello"))

			messages1 := chat.GetMessages(conv)
			messages2 := chat.GetMessages(conv)

			Expect(&messages1[0]).ToNot(BeIdenticalTo(&messages2[0]))
			Expect(messages1[0]).To(Equal(messages2[0]))
		})
	})

	Describe("GetLastMessage", func() {
		It("should return false for an empty conversation", func() {
			conv := chat.NewConversation("default_user")

			_, found := chat.GetLastMessage(conv)
			Expect(found).To(BeFalse())
		})
	})

	Describe("GetLastAssistantMessage", func() {
		It("should return false when no assistant messages exist", func() {
			conv := chat.NewConversation("default_user")
			conv = chat.AddMessage(conv, chat.NewUserMessage("Hello"))

			_, found := chat.GetLastAssistantMessage(conv)
			Expect(found).To(BeFalse())
		})

		It("should return the most recent assistant message", func() {
			conv := chat.NewConversation("default_user")
			conv = chat.AddMessage(conv, chat.NewAssistantMessage(payload.Text("First"), ""))
			conv = chat.AddMessage(conv, chat.NewUserMessage("User message"))
			conv = chat.AddMessage(conv, chat.NewAssistantMessage(payload.Text("Last assistant"), "stock_price"))

			msg, found := chat.GetLastAssistantMessage(conv)
			Expect(found).To(BeTrue())
			Expect(msg.Payload.Text).To(Equal("Last assistant"))
			Expect(msg.Intent).To(Equal("stock_price"))
			Expect(msg.IsAssistant()).To(BeTrue())
		})
	})

	Describe("GetLastUserMessage", func() {
		It("should return the most recent user message", func() {
			conv := chat.NewConversation("default_user")
			conv = chat.AddMessage(conv, chat.NewUserMessage("First user"))
			conv = chat.AddMessage(conv, chat.NewAssistantMessage(payload.Text("reply"), ""))
			conv = chat.AddMessage(conv, chat.NewUserMessage("Last user"))

			msg, found := chat.GetLastUserMessage(conv)
			Expect(found).To(BeTrue())
			Expect(msg.Payload.Text).To(Equal("Last user"))
			Expect(msg.IsUser()).To(BeTrue())
		})
	})

	Describe("GetMessagesByRole", func() {
		It("should return all messages for the specified role", func() {
			conv := chat.NewConversation("default_user")
			conv = chat.AddMessage(conv, chat.NewUserMessage("User 1"))
			conv = chat.AddMessage(conv, chat.NewAssistantMessage(payload.Text("Assistant 1"), ""))
			conv = chat.AddMessage(conv, chat.NewUserMessage("User 2"))
			conv = chat.AddMessage(conv, chat.NewErrorMessage("Failed to connect to chatbot service"))

			userMessages := chat.GetMessagesByRole(conv, chat.RoleUser)
			assistantMessages := chat.GetMessagesByRole(conv, chat.RoleAssistant)

			Expect(userMessages).To(HaveLen(2))
			Expect(assistantMessages).To(HaveLen(2))
			Expect(userMessages[0].Payload.Text).To(Equal("User 1"))
			Expect(assistantMessages[1].IsError()).To(BeTrue())
		})
	})
})
