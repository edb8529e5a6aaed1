// Package model defines the value types shared by the ledger, the catalog and the menus.
package model
