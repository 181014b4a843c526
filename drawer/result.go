package drawer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// BoxDraw 是單一籤盒在一次抽籤中的結果。
type BoxDraw struct {
	Title string
	Items []string
}

// Result maps box titles to the items drawn from them. Box order is kept
// so the JSON object and any display list boxes the way they were
// configured.
type Result []BoxDraw

// Get returns the items drawn for title.
func (r Result) Get(title string) ([]string, bool) {
	for _, d := range r {
		if d.Title == title {
			return d.Items, true
		}
	}
	return nil, false
}

// Pool flattens all drawn items, box order first, then item order.
func (r Result) Pool() []string {
	var pool []string
	for _, d := range r {
		pool = append(pool, d.Items...)
	}
	return pool
}

// set assigns items to title. A repeated title keeps the position of its
// first occurrence and takes the newer items.
func (r Result) set(title string, items []string) Result {
	for i := range r {
		if r[i].Title == title {
			r[i].Items = items
			return r
		}
	}
	return append(r, BoxDraw{Title: title, Items: items})
}

// MarshalJSON writes the draw as one JSON object whose keys keep box
// order. A nil item list is written as [].
func (r Result) MarshalJSON() ([]byte, error) {
	out := bytes.NewBufferString("{")
	for i, d := range r {
		if i > 0 {
			out.WriteByte(',')
		}
		items := d.Items
		if items == nil {
			items = []string{}
		}
		key, err := encodeRaw(d.Title)
		if err != nil {
			return nil, err
		}
		val, err := encodeRaw(items)
		if err != nil {
			return nil, err
		}
		out.Write(key)
		out.WriteByte(':')
		out.Write(val)
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// encodeRaw encodes v without HTML escaping so titles stay readable in
// the log file.
func encodeRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON 以 gjson 逐一讀取物件，保留鍵的原始順序。
func (r *Result) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("result: invalid json")
	}
	parsed := gjson.ParseBytes(data)
	if parsed.Type == gjson.Null {
		*r = nil
		return nil
	}
	if !parsed.IsObject() {
		return fmt.Errorf("result: expected object, got %s", parsed.Type)
	}

	out := Result{}
	var err error
	parsed.ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			err = fmt.Errorf("result: box %q is not a list", key.String())
			return false
		}
		items := []string{}
		for _, v := range value.Array() {
			if v.Type != gjson.String {
				err = fmt.Errorf("result: box %q holds a non-string item", key.String())
				return false
			}
			items = append(items, v.String())
		}
		out = out.set(key.String(), items)
		return true
	})
	if err != nil {
		return err
	}
	*r = out
	return nil
}
