package ui

import "time"

const (
	// ToastDuration is how long a toast stays on screen.
	ToastDuration = 2500 * time.Millisecond

	// chromeHeight is the header, nav bar and footer.
	chromeHeight = 3

	// priceStep is how much +/- moves the category price ceiling.
	priceStep = 100

	// modalWidth is the width of help and confirmation dialogs.
	modalWidth = 48
)

// ratingSteps are the minimum ratings the category page cycles through.
// Zero disables the criterion.
var ratingSteps = []float64{0, 4, 3}
