package model

// Package model defines domain data structures used across the app: jokes,
// categories, ratings, and the fetch status enum. Structures are designed for
// direct binding in the UI and explicit state transitions.
