package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type Context map[string]interface{}

type Message struct {
	Time    string  `json:"time"`
	Level   string  `json:"level,omitempty"`
	Service string  `json:"service"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

// LogFn receives every debug line; the CLI replaces it to print plain text.
var LogFn = func(service string, message string) {
	fmt.Println(makeMessage("", service, message))
}

// WarnFn receives every warning line.
var WarnFn = func(service string, message string) {
	fmt.Println(makeMessage("warn", service, message))
}

func Debug(service string, message string) {
	LogFn(service, message)
}

func Warn(service string, message string) {
	WarnFn(service, message)
}

func makeMessage(level string, service string, message string) string {
	context := make(Context, 0)

	if hostname, err := os.Hostname(); err == nil {
		context["hostname"] = hostname
	}

	messageStruct := Message{
		Time:    time.Now().Format(time.RFC3339),
		Level:   level,
		Service: service,
		Message: message,
		Context: context,
	}

	data, _ := json.Marshal(messageStruct)

	return string(data)
}
