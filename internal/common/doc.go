// Package common holds small generic helpers shared across packages.
package common
