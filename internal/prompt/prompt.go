// Package prompt renders the natural-language prompts sent to the
// generative service. Keep all prompt text centralized here so it is easy
// to tweak without hunting through call sites. The only conditional logic
// is the grounded/knowledge-only split: fetched context is embedded
// verbatim when present and omitted entirely when absent.
package prompt

import "fmt"

// AlbumContext builds the album-context prompt. year, genre and
// description are the optional results of the catalog and description
// fetches; empty values degrade the prompt rather than failing.
func AlbumContext(album, artist, year, genre, description string) string {
	meta := ""
	if year != "" {
		meta = fmt.Sprintf(" (sorti en %s, genre : %s)", year, genre)
	}

	var base string
	if description == "" {
		base = fmt.Sprintf(
			"En te basant sur tes connaissances, pour l'album \"%s\" de %s%s, réponds en français.",
			album, artist, meta)
	} else {
		base = fmt.Sprintf(
			"Pour l'album \"%s\" de %s%s, basé sur cette description :\n%s\nRéponds en français.",
			album, artist, meta, description)
	}

	return base + "\n\nRéponds UNIQUEMENT avec ce JSON valide (sans markdown) :" +
		`{"context":"2-3 phrases sur le contexte et la genèse de l'album",` +
		`"notable_fact":"Un fait marquant ou anecdote sur cet album"}`
}

// LyricsInterpretation builds the lyrics-interpretation prompt. lyrics is
// the optional scraped text; when empty the model is asked to work from
// its own knowledge.
func LyricsInterpretation(title, artist, lyrics string) string {
	intro := fmt.Sprintf(
		"Tu es un expert en musique et en analyse de textes. Pour le morceau \"%s\" de %s",
		title, artist)

	var body string
	if lyrics == "" {
		body = intro + ", explique en 3-4 phrases en français (en te basant sur tes connaissances)"
	} else {
		body = fmt.Sprintf(
			"%s, voici les paroles :\n\n%s\n\nBasé sur ces paroles, explique en 3-4 phrases en français",
			intro, lyrics)
	}

	return body + " : le thème principal, l'émotion portée, et ce que l'artiste " +
		"cherche à exprimer. Sois précis et va au-delà du simple résumé.\n\n" +
		`Réponds UNIQUEMENT avec ce JSON (sans markdown) : {"interpretation": "..."}`
}
