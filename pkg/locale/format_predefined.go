package locale

// FormatEnUS returns a Format configured for US English (en-US).
func FormatEnUS() *Format {
	return NewFormat()
}

// FormatEnGB returns a Format configured for British English (en-GB).
func FormatEnGB() *Format {
	return NewFormat(
		WithTag("en-GB"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006, 15:04"),
		WithFullFormat("Monday 2 January 2006 at 15:04"),
	)
}

// FormatEnIE returns a Format configured for Irish English (en-IE).
func FormatEnIE() *Format {
	return NewFormat(
		WithTag("en-IE"),
		WithDateFormat("2/1/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("2/1/2006, 15:04"),
		WithFullFormat("Monday 2 January 2006 at 15:04"),
	)
}

// FormatEnAU returns a Format configured for Australian English (en-AU).
func FormatEnAU() *Format {
	return NewFormat(
		WithTag("en-AU"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("3:04 pm"),
		WithDateTimeFormat("02/01/2006, 3:04 pm"),
		WithFullFormat("Monday 2 January 2006 at 3:04 pm"),
	)
}
