// Package view builds the presentation models shared by the web and terminal
// front ends: the multi-year month grid and the day-detail screen.
//
// A Screen represents one visit to a day. Creating it builds a fresh event
// store from the seed list, so anything added or removed is gone once the
// screen is discarded. Renderers watch Screen.Revision, which moves on every
// store change notification, to decide when to redraw.
package view
