// Package cards models the card catalog: the polymorphic card classes
// (plain cards, heroes, cardbacks), the Card entity binding one asset bundle
// to its class rules, and the factory that turns crawl results into cards.
package cards
