package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name, vehicleName, startDate, endDate string, totalPriceCents int32) error {
	subject := fmt.Sprintf("Booking confirmed: %s", vehicleName)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nYour booking of %s from %s to %s is confirmed.\nTotal price: $%.2f.\n\nThe RentWheels Team",
		name, vehicleName, startDate, endDate, float64(totalPriceCents)/100,
	)
	return s.send(email, name, subject, plainText)
}

func (s *emailService) SendBookingCancellation(ctx context.Context, email, name, vehicleName string) error {
	subject := fmt.Sprintf("Booking cancelled: %s", vehicleName)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nYour booking of %s has been cancelled.\n\nThe RentWheels Team",
		name, vehicleName,
	)
	return s.send(email, name, subject, plainText)
}

func (s *emailService) SendBookingReturned(ctx context.Context, email, name, vehicleName string) error {
	subject := fmt.Sprintf("Vehicle returned: %s", vehicleName)
	plainText := fmt.Sprintf(
		"Hello %s,\n\nYour rental of %s has been completed. Thank you for riding with us.\n\nThe RentWheels Team",
		name, vehicleName,
	)
	return s.send(email, name, subject, plainText)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
