// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceamNkNBHhr8VWOTJRRxt0NwΞΞ = ord.NewSliceSer[string](ord.String)
	slicez6foTNHnzsei3YCAΣ4dm7QΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var RecipeMUS = recipeMUS{}

type recipeMUS struct{}

func (s recipeMUS) Marshal(v Recipe, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += ord.String.Marshal(v.Cuisine, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += ord.String.Marshal(v.Notes, bs[n:])
	n += sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Marshal(v.Ingredients, bs[n:])
	n += sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Marshal(v.Instructions, bs[n:])
	n += sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Marshal(v.Tags, bs[n:])
	n += ord.String.Marshal(v.ImageURL, bs[n:])
	n += ord.String.Marshal(v.SourceURL, bs[n:])
	n += ord.String.Marshal(v.Servings, bs[n:])
	n += ord.String.Marshal(v.PrepTime, bs[n:])
	n += ord.String.Marshal(v.CookTime, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
	return n + slicez6foTNHnzsei3YCAΣ4dm7QΞΞ.Marshal(v.Vector, bs[n:])
}

func (s recipeMUS) Unmarshal(bs []byte) (v Recipe, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Cuisine, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Notes, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ingredients, n1, err = sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Instructions, n1, err = sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tags, n1, err = sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ImageURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Servings, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PrepTime, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CookTime, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slicez6foTNHnzsei3YCAΣ4dm7QΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s recipeMUS) Size(v Recipe) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Description)
	size += ord.String.Size(v.Category)
	size += ord.String.Size(v.Cuisine)
	size += ord.String.Size(v.Summary)
	size += ord.String.Size(v.Notes)
	size += sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Size(v.Ingredients)
	size += sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Size(v.Instructions)
	size += sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Size(v.Tags)
	size += ord.String.Size(v.ImageURL)
	size += ord.String.Size(v.SourceURL)
	size += ord.String.Size(v.Servings)
	size += ord.String.Size(v.PrepTime)
	size += ord.String.Size(v.CookTime)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	size += raw.TimeUnixMicro.Size(v.UpdatedAt)
	return size + slicez6foTNHnzsei3YCAΣ4dm7QΞΞ.Size(v.Vector)
}

func (s recipeMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceamNkNBHhr8VWOTJRRxt0NwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicez6foTNHnzsei3YCAΣ4dm7QΞΞ.Skip(bs[n:])
	n += n1
	return
}
