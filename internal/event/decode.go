package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process publishes carry T or *T directly;
// anything else (a dead-letter replay, a map) goes through a JSON round trip.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// FightID returns the fight id carried in the event metadata, or ""
func (e Event) FightID() string {
	id, _ := e.GetMetadataValue(MetadataKeyFightID).(string)
	return id
}
