// Package domain holds the business entities shared across the service:
// users, audiences, campaigns, their performance records and the projections
// derived from them. Nothing in here talks to a database or the network.
package domain
