package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger пишет в буфер (для вывода логов на страницу) и, если задано, в дополнительные выходы.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *syncBuffer
}

// Буфер логов, общий для логгера и его дочерних логгеров
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

type options struct {
	level    zapcore.Level
	outputs  []io.Writer
	color    bool
	buffered bool
}

type Option func(*options)

// Не копить логи в памяти, писать только в выходы из WithOutput
func WithoutBuffer() Option {
	return func(o *options) {
		o.buffered = false
	}
}

// Минимальный уровень, по умолчанию Debug
func WithLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// Дополнительный выход, например os.Stdout
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.outputs = append(o.outputs, w)
	}
}

// Без ANSI-цветов в уровне
func WithoutColor() Option {
	return func(o *options) {
		o.color = false
	}
}

func New(opts ...Option) *ZapLogger {
	o := options{level: zap.DebugLevel, color: true, buffered: true}
	for _, set := range opts {
		set(&o)
	}

	logBuf := &syncBuffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if o.color {
		config.EncodeLevel = colorLevelEncoder
	}

	encoder := zapcore.NewConsoleEncoder(config)

	var cores []zapcore.Core
	if o.buffered {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(logBuf), o.level))
	}
	for _, w := range o.outputs {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(w), o.level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    logger,
		logBuf: logBuf,
	}
}

// Nop - логгер, который ничего не пишет
func Nop() *ZapLogger {
	return &ZapLogger{
		log:    zap.NewNop(),
		logBuf: &syncBuffer{},
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m"
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiRe = regexp.MustCompile(`\033\[(\d+)m`)

// ANSI-цвета -> span с inline-стилем, все внутри <pre>
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiRe.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(input[lastIndex:start])
		}

		code := input[match[2]:match[3]]
		if color, ok := colorMap[code]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if code == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(input[lastIndex:])
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// HTML - накопленные логи для вставки в страницу. Рендерится при каждом вызове,
// поэтому звать один раз, после построения.
func (z *ZapLogger) HTML() []string {
	text := z.logBuf.String()
	if text == "" {
		return nil
	}
	return []string{ansiToHTML(text)}
}

// Text - сырой текст логов без HTML
func (z *ZapLogger) Text() string {
	return z.logBuf.String()
}

func (z *ZapLogger) ClearLogs() {
	z.logBuf.Reset()
}

// Named - дочерний логгер с тем же буфером
func (z *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{
		log:    z.log.Named(name),
		logBuf: z.logBuf,
	}
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}
