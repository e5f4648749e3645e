// Package recipeimport turns the HTML of a recipe web page into a
// structured recipe by asking a large language model to fill in a strict
// JSON schema.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., openai/, gemini/, goquery/).
package recipeimport
