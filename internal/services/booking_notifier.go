package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/example/parcelbook/internal/models"
)

// BookingNotifier sends new-booking alerts to a Telegram admin chat.
type BookingNotifier struct {
	botToken    string
	adminChatID string
}

// NewBookingNotifier creates a new BookingNotifier.
func NewBookingNotifier(botToken, adminChatID string) *BookingNotifier {
	return &BookingNotifier{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *BookingNotifier) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// NotifyNewBooking sends a notification about a new parcel booking to the
// admin chat. A no-op when the admin chat is not configured.
func (s *BookingNotifier) NotifyNewBooking(parcel models.Parcel) error {
	if s.adminChatID == "" {
		return nil
	}
	return s.SendMessage(s.adminChatID, bookingMessage(parcel))
}

func bookingMessage(parcel models.Parcel) string {
	message := fmt.Sprintf(`<b>📦 NEW PARCEL BOOKING</b>
<b>Buyer:</b> %s (%s)
<b>Phone:</b> %s
<b>Parcel:</b> %s, %.1f kg
<b>Deliver to:</b> %s
<b>Receiver:</b> %s, %s
<b>Requested date:</b> %s
<b>Price:</b> %.2f
━━━━━━━━━━━━━━━━━━`,
		parcel.BuyerName,
		parcel.BuyerEmail,
		parcel.BuyerPhoneNo,
		parcel.ParcelType,
		parcel.ParcelWeight,
		parcel.DeliveryAddress,
		parcel.ReceiverName,
		parcel.ReceiverPhoneNo,
		parcel.DeliveryDate,
		parcel.Price,
	)

	return strings.TrimSpace(message)
}
