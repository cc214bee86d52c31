package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// mapHTTPError converts a non-2xx response into an *Error. Message and Code
// are taken from the JSON body ("message" or "error", and "code"), otherwise
// the trimmed body text becomes the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message, code := parseErrorBody(resp.Body())

	return &Error{
		Kind:    kindForStatus(resp.StatusCode()),
		Status:  resp.StatusCode(),
		Message: message,
		Code:    code,
	}
}

func parseErrorBody(body []byte) (message, code string) {
	if gjson.ValidBytes(body) {
		parsed := gjson.ParseBytes(body)
		if parsed.IsObject() {
			message = parsed.Get("message").String()
			if message == "" {
				message = parsed.Get("error").String()
			}
			return message, parsed.Get("code").String()
		}
		if parsed.Type == gjson.String {
			return parsed.String(), ""
		}
	}

	return strings.TrimSpace(string(body)), ""
}

// mapTransportError wraps a failure that produced no response.
func mapTransportError(op string, err error) error {
	return &Error{
		Kind:  KindTimeout,
		cause: fmt.Errorf("%s: %w", op, err),
	}
}
