package app

import (
	"strings"

	"roe-gui/internal/errors"
	"roe-gui/internal/util"
	"roe-gui/internal/worker"
)

// NotificationKind classifies the end-of-batch message.
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyWrongPassword
	NotifyError
	NotifyEmpty
)

// Headlines of the end-of-batch message.
const (
	SuccessText       = "Operation completed successfully"
	WrongPasswordText = "Wrong decryption password."
	ErrorText         = "An error occurred."
	EmptyText         = "Nothing to process."
)

// Notification is shown to the user once per batch.
type Notification struct {
	Kind    NotificationKind
	Title   string
	Message string
}

// BuildNotification turns a batch outcome into the message shown to the
// user. Each excerpt of a failure is truncated to limit runes on its own.
func BuildNotification(out worker.Outcome, limit int) Notification {
	switch out.Kind {
	case worker.OutcomeSuccess:
		return Notification{Kind: NotifySuccess, Title: "Done", Message: SuccessText}
	case worker.OutcomeEmpty:
		return Notification{Kind: NotifyEmpty, Title: "Done", Message: EmptyText}
	}

	if limit <= 0 {
		limit = util.DefaultTruncateLimit
	}

	var message, stdout, stderr string
	if r := out.Response; r != nil {
		stdout, stderr = r.Stdout, r.Stderr
		if r.Error != nil {
			message = r.Error.Message
		}
	}

	n := Notification{Kind: NotifyError, Title: "Error"}
	headline := ErrorText
	if errors.IsPasswordMismatch(out.Err()) {
		n.Kind = NotifyWrongPassword
		n.Title = "Wrong password"
		headline = WrongPasswordText
	}

	var b strings.Builder
	b.WriteString(headline)
	b.WriteString("\n\n")
	b.WriteString("message: " + util.Truncate(message, limit) + "\n")
	b.WriteString("stdout: " + util.Truncate(stdout, limit) + "\n")
	b.WriteString("stderr: " + util.Truncate(stderr, limit))
	n.Message = b.String()
	return n
}
