package printing

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	domainprinting "github.com/lorenzobigazzi0/cassa/internal/domain/printing"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

const (
	defaultSocketTimeout = 5 * time.Second
	socketScheme         = "tcp://"
	ticketTerminator     = "\n\n"
)

var charsets = map[string]*charmap.Charmap{
	"cp437":      charmap.CodePage437,
	"cp850":      charmap.CodePage850,
	"cp858":      charmap.CodePage858,
	"iso8859-15": charmap.ISO8859_15,
}

// SocketAdapter writes raw text to a network printer, usually a thermal
// printer listening on port 9100.
type SocketAdapter struct {
	timeout time.Duration
	encoder *encoding.Encoder
	dialer  net.Dialer
	logger  logger.Interface
}

// NewSocketAdapter builds the adapter. An empty charset or "utf-8" sends the
// text unchanged.
func NewSocketAdapter(timeout time.Duration, charset string, log logger.Interface) (*SocketAdapter, error) {
	if timeout <= 0 {
		timeout = defaultSocketTimeout
	}

	a := &SocketAdapter{
		timeout: timeout,
		dialer:  net.Dialer{Timeout: timeout},
		logger:  log.Named("printing.socket"),
	}

	switch cs := strings.ToLower(strings.TrimSpace(charset)); cs {
	case "", "utf-8", "utf8":
	default:
		cm, ok := charsets[cs]
		if !ok {
			return nil, fmt.Errorf("unsupported printer charset: %q", charset)
		}
		a.encoder = encoding.ReplaceUnsupported(cm.NewEncoder())
	}

	return a, nil
}

// ParseSocketDestination accepts "host:port" with an optional tcp:// prefix.
func ParseSocketDestination(destination string) (string, int, error) {
	conn := strings.TrimSpace(destination)
	conn = strings.TrimPrefix(conn, socketScheme)

	idx := strings.LastIndex(conn, ":")
	if idx < 0 {
		return "", 0, fmt.Errorf("invalid printer destination %q: expected IP:PORT (e.g. 192.168.1.50:9100)", destination)
	}

	host, portStr := strings.Trim(conn[:idx], "[]"), conn[idx+1:]
	if host == "" {
		return "", 0, fmt.Errorf("invalid printer destination %q: missing host", destination)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return "", 0, fmt.Errorf("invalid printer destination %q: bad port %q", destination, portStr)
	}

	return host, port, nil
}

func (a *SocketAdapter) Send(ctx context.Context, destination, title, text string) domainprinting.Outcome {
	host, port, err := ParseSocketDestination(destination)
	if err != nil {
		return domainprinting.Failed(err.Error())
	}

	payload, err := a.encode(text + ticketTerminator)
	if err != nil {
		return domainprinting.Failed(err.Error())
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := a.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		a.logger.Warnw("printer unreachable", "addr", addr, "error", err)
		return domainprinting.Failed(err.Error())
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(a.timeout)); err != nil {
		return domainprinting.Failed(err.Error())
	}
	if _, err := conn.Write(payload); err != nil {
		a.logger.Warnw("printer write failed", "addr", addr, "error", err)
		return domainprinting.Failed(err.Error())
	}

	a.logger.Debugw("ticket sent", "addr", addr, "title", title, "bytes", len(payload))
	return domainprinting.Succeeded()
}

func (a *SocketAdapter) encode(s string) ([]byte, error) {
	if a.encoder == nil {
		return []byte(s), nil
	}
	return a.encoder.Bytes([]byte(s))
}
