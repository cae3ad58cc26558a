package resettime

const (
	hoursPerDay    = 24
	minutesPerHour = 60

	minUTCOffset = -12
	maxUTCOffset = 14
)
