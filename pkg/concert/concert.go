package concert

import (
	"context"
	"encoding/xml"
	"errors"
	"time"
)

// Concert represents a scheduled performance.
type Concert struct {
	XMLName xml.Name  `json:"-" xml:"concert"`
	ID      int64     `json:"id" xml:"id,attr"`
	Title   string    `json:"title" xml:"title"`
	Date    time.Time `json:"date" xml:"date"`
}

// Concerts is an ordered page of concerts. It renders as a plain array in
// JSON and as a <concerts> element in XML.
type Concerts []Concert

type xmlConcerts struct {
	Items []Concert `xml:"concert"`
}

// MarshalXML wraps the items in a <concerts> root element.
func (cs Concerts) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "concerts"}
	return e.EncodeElement(xmlConcerts{Items: cs}, start)
}

// UnmarshalXML reads a <concerts> element.
func (cs *Concerts) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var wrapped xmlConcerts
	if err := d.DecodeElement(&wrapped, &start); err != nil {
		return err
	}
	*cs = wrapped.Items
	return nil
}

// Repository defines behavior for storing concerts.
//
// Create ignores any ID on the input and assigns the next value of a counter
// that only ever increases. DeleteAll never resets that counter.
type Repository interface {
	Create(ctx context.Context, c Concert) (Concert, error)
	Get(ctx context.Context, id int64) (Concert, error)
	Range(ctx context.Context, start int64, size int) (Concerts, error)
	DeleteAll(ctx context.Context) error
}

// ErrNotFound indicates the requested concert does not exist.
var ErrNotFound = errors.New("concert not found")
