package app

import (
	"fmt"
	"io"
	"time"

	"github.com/testshot/iconmaker/internal/icon"
)

const (
	// OutputPath is where the icon is written, relative to the working directory.
	OutputPath = "icon.png"

	SuccessMessage = "✅ Icon 1024x1024 created successfully!"
)

type App struct {
	Renderer   *icon.Renderer
	OutputPath string
	Out        io.Writer
	Logger     Logger
}

func New(renderer *icon.Renderer, out io.Writer) *App {
	return &App{Renderer: renderer, OutputPath: OutputPath, Out: out, Logger: NoopLogger{}}
}

// Run renders the icon, writes it and prints the success line. Nothing is
// printed to Out when writing fails.
func (app *App) Run() error {
	if app.Renderer == nil {
		app.Renderer = icon.NewRenderer()
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	app.Renderer.Logger = app.Logger

	img := app.Renderer.Render()
	app.Logger.Infof("app", "icon rendered, bounds=%v", img.Bounds())

	if err := WritePNG(app.OutputPath, img); err != nil {
		app.Logger.Errorf("app", "write failed: %v", err)
		return err
	}
	app.Logger.Infof("app", "wrote %s", app.OutputPath)

	_, err := fmt.Fprintln(app.Out, SuccessMessage)
	return err
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
