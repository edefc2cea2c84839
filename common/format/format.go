package format

import (
	"fmt"
	"strings"
)

func ToString(messages ...any) string {
	var builder strings.Builder
	for _, message := range messages {
		builder.WriteString(fmt.Sprint(message))
	}
	return builder.String()
}
