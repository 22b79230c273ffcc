package logger

import (
	"encoding/json"
	"log"
	"os"
)

func Init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
	log.Printf(`{"level":"INFO","msg":"logger initialized"}`)
}

func encodeFields(fields map[string]any) string {
	if len(fields) == 0 {
		return "{}"
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func Info(msg string, fields map[string]any) {
	log.Printf(`{"level":"INFO","msg":"%s","fields":%s}`, msg, encodeFields(fields))
}

func Warn(msg string, fields map[string]any) {
	log.Printf(`{"level":"WARN","msg":"%s","fields":%s}`, msg, encodeFields(fields))
}

func Error(msg string, fields map[string]any) {
	log.Printf(`{"level":"ERROR","msg":"%s","fields":%s}`, msg, encodeFields(fields))
}

func Fatal(msg string, fields map[string]any) {
	log.Printf(`{"level":"FATAL","msg":"%s","fields":%s}`, msg, encodeFields(fields))
	os.Exit(1)
}
