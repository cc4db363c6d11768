package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

type IntOrString int

func (i *IntOrString) UnmarshalJSON(b []byte) error {
	var asInt int
	if err := json.Unmarshal(b, &asInt); err == nil {
		*i = IntOrString(asInt)
		return nil
	}

	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		parsed, err := strconv.Atoi(strings.TrimSpace(asStr))
		if err != nil {
			return err
		}
		*i = IntOrString(parsed)
		return nil
	}

	return errors.New("invalid int or string")
}

// FlexString keeps the text form of a JSON string or number.
// Any other JSON value decodes as an empty string.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		*s = FlexString(asStr)
		return nil
	}

	var asNum json.Number
	if err := json.Unmarshal(b, &asNum); err == nil {
		*s = FlexString(asNum.String())
		return nil
	}

	*s = ""
	return nil
}

func (s FlexString) String() string {
	return string(s)
}
