package mailer

import "context"

// Mailer формирует письма о бронированиях и передает их в транспорт
type Mailer struct {
	publisher Publisher
	from      string
	appURL    string
}

func NewMailer(publisher Publisher, from, appURL string) *Mailer {
	return &Mailer{
		publisher: publisher,
		from:      from,
		appURL:    appURL,
	}
}

// SendBookingConfirmation письмо клиенту о принятой заявке
func (m *Mailer) SendBookingConfirmation(ctx context.Context, b BookingEmail) error {
	html, err := render(confirmationTemplate, newTemplateData(b, m.appURL))
	if err != nil {
		return err
	}
	return m.publisher.Publish(ctx, EmailPayload{
		Subject:  subjectConfirmation,
		From:     m.from,
		To:       []string{b.CustomerEmail},
		HTMLCode: html,
	})
}

// SendProviderNotification письмо провайдеру о новой заявке
func (m *Mailer) SendProviderNotification(ctx context.Context, b BookingEmail) error {
	html, err := render(notificationTemplate, newTemplateData(b, m.appURL))
	if err != nil {
		return err
	}
	return m.publisher.Publish(ctx, EmailPayload{
		Subject:  subjectNotification,
		From:     m.from,
		To:       []string{b.ProviderEmail},
		HTMLCode: html,
	})
}
