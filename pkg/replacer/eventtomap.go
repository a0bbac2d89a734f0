package replacer

import (
	"fmt"
	"reflect"

	cloudevents "github.com/cloudevents/sdk-go/v2"
)

// ConvertToMap flattens the data of event into dotted keys below "data", next to
// its extensions and the id, source, type and specversion attributes.
func ConvertToMap(event cloudevents.Event) (res map[string]string, err error) {
	temp := make(map[string]interface{})
	res = make(map[string]string)
	if len(event.Data()) > 0 {
		if err := event.DataAs(&temp); err != nil {
			return nil, fmt.Errorf("could not read data of event %s: %w", event.ID(), err)
		}
	}
	addKeysToMap("data", res, temp)
	addKeysToMap("", res, event.Extensions())
	res["id"] = event.ID()
	res["source"] = event.Source()
	res["type"] = event.Type()
	res["specversion"] = event.SpecVersion()
	return res, nil
}

func addKeysToMap(root string, m map[string]string, temp map[string]interface{}) {
	for k, v := range temp {
		key := k
		if root != "" {
			key = root + "." + k
		}
		if v != nil {
			if reflect.TypeOf(v).Kind() != reflect.Map {
				m[key] = fmt.Sprintf("%v", v)
			} else if nested, ok := v.(map[string]interface{}); ok {
				addKeysToMap(key, m, nested)
			}
		}
	}
}
