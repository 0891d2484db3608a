package extractors

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/mail"
	"os"
	"strings"

	"github.com/arkivio/docload/internal/core/domain"
	"github.com/arkivio/docload/internal/core/ports/driven"
	"github.com/arkivio/docload/internal/logger"
)

// Ensure Mbox implements the interface.
var _ driven.Extractor = (*Mbox)(nil)

// MaxMboxMessages caps how many messages are read from one mailbox.
const MaxMboxMessages = 1000

// Mbox extracts unix mailbox files, one document per message in
// mailbox order. Messages beyond MaxMboxMessages are ignored.
type Mbox struct{}

// NewMbox creates a new mbox extractor.
func NewMbox() *Mbox {
	return &Mbox{}
}

// Extract splits the mailbox on From-lines and parses each message.
func (e *Mbox) Extract(_ context.Context, path string, extraInfo map[string]any) ([]domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raws, err := splitMbox(f, MaxMboxMessages)
	if err != nil {
		return nil, fmt.Errorf("split mbox: %w", err)
	}

	docs := make([]domain.Document, 0, len(raws))
	for i, rawMsg := range raws {
		msg, err := mail.ReadMessage(strings.NewReader(rawMsg))
		if err != nil {
			logger.Debug("mbox: skipping unparseable message %d in %s: %v", i, path, err)
			continue
		}

		body, err := io.ReadAll(msg.Body)
		if err != nil {
			logger.Debug("mbox: skipping unreadable message %d in %s: %v", i, path, err)
			continue
		}

		info := copyExtraInfo(extraInfo)
		info["format"] = "mbox"
		info["subject"] = msg.Header.Get("Subject")
		info["from"] = msg.Header.Get("From")
		info["date"] = msg.Header.Get("Date")

		docs = append(docs, domain.Document{
			Text:      string(body),
			ExtraInfo: info,
		})
	}

	return docs, nil
}

// splitMbox splits a mailbox stream into raw messages on mbox
// "From " separator lines, up to limit messages.
func splitMbox(r io.Reader, limit int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var messages []string
	var current strings.Builder
	started := false

	flush := func() {
		if started && current.Len() > 0 {
			messages = append(messages, current.String())
		}
		current.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "From ") {
			flush()
			if len(messages) >= limit {
				return messages, nil
			}
			started = true
			continue
		}
		if started {
			current.WriteString(line)
			current.WriteString("\n")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return messages, nil
}
