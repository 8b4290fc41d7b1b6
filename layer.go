// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package graphkit

// Layer is one independently drawn part of a graph: an axis with its tick
// marks and labels, or a series. Series is -1 for axis layers.
type Layer struct {
	Key     string
	Series  int
	Visible bool
}

// SeriesLayerKey returns the layer key of a series.
func SeriesLayerKey(series int) string {
	return sprintf("series%d", series)
}

// layerList builds the layers of a layout in drawing order: the axes first,
// then one layer per series.
func layerList(opts Options, series []Series) []Layer {
	list := make([]Layer, 0, 2+len(series))
	list = append(list,
		Layer{Key: XAxisLayerKey, Series: -1, Visible: opts.DisplayXAxis},
		Layer{Key: YAxisLayerKey, Series: -1, Visible: opts.DisplayYAxis},
	)
	for _, s := range series {
		list = append(list, Layer{
			Key:     SeriesLayerKey(s.Index),
			Series:  s.Index,
			Visible: len(s.Points) > 0,
		})
	}
	return list
}

// Layer returns the layer with the given key.
func (l *Layout) Layer(key string) (Layer, bool) {
	for _, layer := range l.Layers {
		if layer.Key == key {
			return layer, true
		}
	}
	return Layer{}, false
}
