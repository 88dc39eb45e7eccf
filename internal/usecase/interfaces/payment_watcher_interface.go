package interfaces

// IPaymentWatcher tracks orders whose settlement arrives asynchronously. The
// checkout flow starts a watch after submitting a non-cash order; the screen
// cancels it when the cashier abandons the wait. Confirmation is delivered to
// the callback the watcher was built with.
type IPaymentWatcher interface {
	Watch(orderID, draftID string)
	CancelByDraftID(draftID string) bool
}
