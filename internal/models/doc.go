// Package models defines the data model for the movie discovery client.
//
// Catalog types (Movie, Genre, Paged) mirror the TMDB wire format with
// snake_case JSON tags. Local types (StoredUser, Session, MovieSummary) are
// what the stores persist.
package models
