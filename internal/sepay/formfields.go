package sepay

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormField là một cặp key/value trong form auto-submit của cổng thanh toán.
type FormField struct {
	Key   string
	Value string
}

// FormFields là ánh xạ mờ có thứ tự từ khóa sang giá trị chuỗi. Thứ tự
// chèn được giữ nguyên qua JSON vì chữ ký của vendor phụ thuộc thứ tự
// trường; mọi entry được giữ nguyên vẹn khi dựng form auto-submit.
type FormFields []FormField

// Get trả về giá trị của khóa nếu có.
func (f FormFields) Get(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// MarshalJSON xuất object JSON theo đúng thứ tự chèn.
func (f FormFields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON đọc object JSON giữ nguyên thứ tự khóa. Giá trị không
// phải chuỗi được ép về chuỗi; null thành chuỗi rỗng.
func (f *FormFields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("formFields: không phải object JSON")
	}

	fields := FormFields{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		fields = append(fields, FormField{Key: key, Value: coerceString(raw)})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = fields
	return nil
}

func coerceString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return fmt.Sprintf("%v", val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}
