package window

// WindowBuilderOption is a functional option for configuring a Window via NewWindow.
type WindowBuilderOption func(*engineWindow)

// WithTitle is an option builder that sets the window title.
//
// Parameters:
//   - title: the title to display in the title bar
//
// Returns:
//   - WindowBuilderOption: a function that applies the title option to a window
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth is an option builder that sets the initial window width.
//
// Parameters:
//   - width: the client area width in pixels
//
// Returns:
//   - WindowBuilderOption: a function that applies the width option to a window
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight is an option builder that sets the initial window height.
//
// Parameters:
//   - height: the client area height in pixels
//
// Returns:
//   - WindowBuilderOption: a function that applies the height option to a window
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}
