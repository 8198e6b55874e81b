package model

// Package model defines the storefront domain: catalog products and categories,
// cart lines, orders, and the transient filter state of the catalog view.
// Structures mirror the backend JSON contract and are shared by every layer.
