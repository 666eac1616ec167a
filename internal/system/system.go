package system

// logger is the component-tagged logger shared across the app.
type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}
