package utils

import (
	"fmt"

	"github.com/servimart/vendor-dashboard/models"
)

// Every email path renders through these tables. They live here once so the
// customer-facing wording stays consistent across routes.

var serviceStatusMessages = map[models.ServiceStatus]string{
	models.StatusPending:    "Your service request is pending confirmation from the vendor.",
	models.StatusScheduled:  "Your service has been scheduled. The vendor will arrive at the agreed time.",
	models.StatusInProgress: "Your service is now in progress.",
	models.StatusCompleted:  "Your service has been completed. Thank you for booking with us!",
	models.StatusCancelled:  "Your service order has been cancelled.",
	models.StatusRejected:   "Unfortunately the vendor could not take your service request.",
	models.StatusRefunded:   "Your service order has been refunded. The amount will reach your account shortly.",
}

var paymentStatusMessages = map[models.PaymentStatus]string{
	models.PaymentPaid:     "We have received your payment for this service order.",
	models.PaymentFailed:   "Your payment for this service order failed. Please retry from the app.",
	models.PaymentRefunded: "Your payment for this service order has been refunded.",
}

// ServiceStatusMessage returns the customer-facing line for a status change.
func ServiceStatusMessage(status models.ServiceStatus) string {
	if msg, ok := serviceStatusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("Your service order status is now %q.", status)
}

// PaymentStatusMessage returns the customer-facing line for a payment status.
// Pending has no message: no email is sent for it.
func PaymentStatusMessage(status models.PaymentStatus) (string, bool) {
	msg, ok := paymentStatusMessages[status]
	return msg, ok
}

// OrderStatusEmailBody renders the HTML body for an order status email.
func OrderStatusEmailBody(customerName string, o *models.ServiceOrder) string {
	name := customerName
	if name == "" {
		name = "Customer"
	}
	return fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Amount:</strong> %.2f</li>
		</ul>
		<p>Best regards,</p>
		<p>Your Services Team</p>
	`, name, ServiceStatusMessage(o.ServiceStatus),
		o.Service.Name, o.ScheduledDate, o.ScheduledTime, o.FinalPrice)
}

// DecisionEmailBody renders the HTML body of the accept/reject email sent to
// the customer from notification metadata.
func DecisionEmailBody(accepted bool, m models.OrderMetadata) string {
	name := m.CustomerName
	if name == "" {
		name = "Customer"
	}
	outcome := "has been accepted by the vendor and is now scheduled"
	if !accepted {
		outcome = "could not be accepted by the vendor"
	}
	return fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your service request for <strong>%s</strong> %s.</p>
		<ul>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Price:</strong> %.2f</li>
			<li><strong>Address:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>Your Services Team</p>
	`, name, m.ServiceName, outcome, m.ScheduledDate, m.ScheduledTime, m.Price, m.Address)
}

// PaymentEmailBody renders the HTML body of the secondary payment email sent
// after a decision when the booking carried a non-pending payment status.
func PaymentEmailBody(m models.OrderMetadata) string {
	name := m.CustomerName
	if name == "" {
		name = "Customer"
	}
	msg, ok := PaymentStatusMessage(models.PaymentStatus(m.PaymentStatus))
	if !ok {
		msg = fmt.Sprintf("Your payment status for this order is %q.", m.PaymentStatus)
	}
	return fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>%s</p>
		<p><strong>Service:</strong> %s</p>
		<p>Best regards,</p>
		<p>Your Services Team</p>
	`, name, msg, m.ServiceName)
}

// DecisionNotificationText returns the rewritten title, message and
// description stored on the notification after a vendor decision.
func DecisionNotificationText(accepted bool, m models.OrderMetadata) (title, message, description string) {
	if accepted {
		title = "Service Request Accepted"
		message = fmt.Sprintf("You accepted the request for %s on %s at %s.",
			m.ServiceName, m.ScheduledDate, m.ScheduledTime)
	} else {
		title = "Service Request Rejected"
		message = fmt.Sprintf("You rejected the request for %s on %s at %s.",
			m.ServiceName, m.ScheduledDate, m.ScheduledTime)
	}
	description = fmt.Sprintf("Service: %s | Date: %s | Time: %s | Price: %.2f | Address: %s",
		m.ServiceName, m.ScheduledDate, m.ScheduledTime, m.Price, m.Address)
	return title, message, description
}
