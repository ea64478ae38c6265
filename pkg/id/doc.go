// Package id generates short, sortable identifiers for live sessions.
package id
