package chat_test

import (
	"time"

	"github.com/foliochat/foliochat/pkg/chat"
	"github.com/foliochat/foliochat/pkg/payload"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Message", func() {
	Describe("NewUserMessage", func() {
		It("should carry the trimmed text as a text payload", func() {
			msg := chat.NewUserMessage("  compare AAPL vs TSLA  ")

			Expect(msg.Role).To(Equal(chat.RoleUser))
			Expect(msg.Payload.Kind).To(Equal(payload.KindText))
			Expect(msg.Payload.Text).To(Equal("compare AAPL vs TSLA"))
			Expect(msg.ID).ToNot(BeEmpty())
			Expect(msg.Timestamp).To(BeTemporally("~", time.Now(), time.Second))
		})

		It("should assign unique IDs", func() {
			a := chat.NewUserMessage("one")
			b := chat.NewUserMessage("one")
			Expect(a.ID).ToNot(Equal(b.ID))
		})
	})

	Describe("NewAssistantMessage", func() {
		It("should carry the decoded payload and intent label", func() {
			p := payload.Error("No data found for XYZ")
			msg := chat.NewAssistantMessage(p, "stock_price")

			Expect(msg.Role).To(Equal(chat.RoleAssistant))
			Expect(msg.Intent).To(Equal("stock_price"))
			Expect(msg.IsError()).To(BeTrue())
		})
	})

	Describe("NewErrorMessage", func() {
		It("should produce an assistant entry with an error payload", func() {
			msg := chat.NewErrorMessage("Failed to connect to chatbot service")

			Expect(msg.IsAssistant()).To(BeTrue())
			Expect(msg.IsError()).To(BeTrue())
			Expect(msg.Payload.Text).To(Equal("Failed to connect to chatbot service"))
		})
	})

	Describe("WithTimestamp", func() {
		It("should return a copy with the given timestamp", func() {
			ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
			msg := chat.NewUserMessage("hello").WithTimestamp(ts)
			Expect(msg.Timestamp).To(Equal(ts))
		})
	})
})
