package services

import (
	"fmt"
	"strings"

	"github.com/admaagape/studyapi/internal/clients/gemini"
	"github.com/admaagape/studyapi/internal/pagination"
)

// Prompt assembly for every generated collection. The persona and rules are
// kept in Portuguese because that is the language the content is produced in.

const basePersona = `VOCÊ É O PROF. MICHEL FELIX (PhD).
Estilo: Arminiano, Pentecostal Clássico.
Linguagem: CLARA, ACESSÍVEL, LUXUOSA, CULTA.

REGRA DE OURO (IMPORTANTE):
NUNCA ESCREVA O VERSÍCULO BÍBLICO POR EXTENSO.
O ALUNO JÁ TEM A BÍBLIA ABERTA.
USE APENAS A REFERÊNCIA (Ex: "Como vemos em Gn 1:1...", "Conforme o verso 5...").
USE O ESPAÇO QUE SOBRA PARA EXPLICAR, CONTEXTUALIZAR E APLICAR TEOLOGICAMENTE.
QUERO CONTEÚDO DENSO E EXPLICAÇÃO PROFUNDA, NÃO CÓPIA DE BÍBLIA.
NÃO USE CARACTERES ESPECIAIS COMO MARKDOWN (#, -, *, etc).
PARA TÍTULOS USE APENAS LETRAS MAIÚSCULAS OU A TAG ###.`

// continuationBlock instructs the model to resume exactly where the trailing
// context stops. tail is already bounded by the tuning window; only its last
// tailQuote characters are quoted verbatim.
func continuationBlock(tail string, tailQuote, nextPart int) string {
	quoted := tail
	if len(quoted) > tailQuote {
		quoted = quoted[len(quoted)-tailQuote:]
	}
	return fmt.Sprintf(`SITUAÇÃO ATUAL: Você está escrevendo a PARTE %d de um livro contínuo.

TEXTO ANTERIOR (ÚLTIMAS PALAVRAS):
"...%s..."

COMANDO DE CONTINUIDADE ESTRITA:
1. LEIA O CONTEXTO ACIMA COM ATENÇÃO EXTREMA.
2. IDENTIFIQUE EXATAMENTE ONDE PAROU (Qual versículo ou tópico?).
3. SE PAROU NO VERSÍCULO 5, COMECE IMEDIATAMENTE A EXPLICAR O VERSÍCULO 6.
4. É PROIBIDO VOLTAR AO VERSÍCULO 1.
5. É PROIBIDO FAZER NOVA INTRODUÇÃO OU SAUDAÇÃO.
6. NÃO DIGA "DANDO CONTINUIDADE". APENAS CONTINUE O TEXTO.
7. MANTENHA A COESÃO TOTAL. O LEITOR NÃO PODE PERCEBER QUE HOUVE UMA PAUSA.`, nextPart, quoted)
}

func adminInstructions(instruction string) string {
	if strings.TrimSpace(instruction) == "" {
		return ""
	}
	return "\nINSTRUÇÕES ESPECÍFICAS DO ADMIN (OBEDEÇA): " + instruction
}

func studentStudyPrompt(book string, chapter int, instruction, continuation string) string {
	opening := "INÍCIO. Comece a introdução e a explicação dos primeiros versículos."
	if continuation != "" {
		opening = continuation
	}
	return fmt.Sprintf(`%s

OBJETIVO: Criar APOSTILA DO ALUNO para %s %d.
TIPO: Expositivo, narrativo, fluído.%s

%s

REGRAS DE FORMATAÇÃO:
1. Escreva 3 PÁGINAS completas (~2000 palavras).
2. Separe cada página com a tag: %s
3. Use "### TÍTULO" para subtítulos.
4. Use **negrito** para ênfase (SEM MARKDOWN DE LISTAS).
5. Lembre-se: NÃO COPIE VERSÍCULOS. Cite a referência e EXPLIQUE.`,
		basePersona, book, chapter, adminInstructions(instruction), opening, pagination.Delimiter)
}

func teacherStudyPrompt(book string, chapter int, studentContext, instruction, continuation string) string {
	contextInjection := fmt.Sprintf("ATENÇÃO: Não há conteúdo do aluno gerado. Gere um estudo exegético profundo base do zero sobre %s %d.", book, chapter)
	if studentContext != "" {
		contextInjection = fmt.Sprintf(`BASE DE ESTUDO (MATERIAL DO ALUNO): """%s..."""

TAREFA: O professor deve aprofundar o que foi dito acima.`, studentContext)
	}
	opening := "INÍCIO. Comece a introdução técnica."
	if continuation != "" {
		opening = continuation
	}
	return fmt.Sprintf(`%s

OBJETIVO: Criar MANUAL DO PROFESSOR (PhD) para %s %d.
%s%s

%s

CAMADAS DE ANÁLISE OBRIGATÓRIAS (APLIQUE NO TEXTO SEQUENCIALMENTE):
1. NUANCES & ORIGINAIS: Palavras-chave em Hebraico/Grego com transliteração e exegese.
2. INTENÇÃO DO AUTOR: Contexto histórico/cultural imediato e remoto aprofundado.
3. APOLOGÉTICA (Distinção Clara):
   - HERESIAS: Refute Mormonismo, Unicismo, Gnosticismo, Espiritismo, etc. (se aplicável ao texto).
   - DIVERGÊNCIAS: Comente divergências saudáveis (Ex: Calvinismo, Pós-Trib) sob a ótica Pentecostal Clássica.
4. CURIOSIDADES: Padrões ocultos, frases formadas no original (ex: Genealogias), tipologias.
5. PEDAGOGIA: "Possível Pergunta do Aluno" e "Resposta do Mestre".
6. PARADOXOS: Resolução de aparentes contradições do texto.

REGRAS DE FORMATAÇÃO:
1. Escreva 3 PÁGINAS completas (~2500 palavras).
2. Separe cada página com a tag: %s
3. Use "### TÍTULO" para seções.
4. Use **negrito** para termos chaves.
5. NÃO COPIE VERSÍCULOS.`,
		basePersona, book, chapter, contextInjection, adminInstructions(instruction), opening, pagination.Delimiter)
}

func commentaryPrompt(book string, chapter, verse int, verseText string) string {
	return fmt.Sprintf(`Você é o Prof. Michel Felix (Arminiano, Pentecostal Clássico, Arqueólogo).
Comente %s %d:%d.
Texto: "%s".
Linguagem acessível, teologicamente profunda. 2-3 parágrafos.`, book, chapter, verse, verseText)
}

func dictionaryPrompt(book string, chapter, verse int, verseText, language string) string {
	return fmt.Sprintf(`Você é um HEBRAÍSTA e HELENISTA SÊNIOR com doutorado em línguas bíblicas.
TAREFA: Análise lexical COMPLETA de %s %d:%d
Texto em português: "%s"
Idioma original: %s

Analise TODAS as palavras principais do versículo.
Preencha TODOS os campos: original, transliteration, portuguese, polysemy, etymology, grammar.`,
		book, chapter, verse, verseText, strings.ToUpper(language))
}

func dictionarySchema() map[string]any {
	word := gemini.SchemaObject(map[string]any{
		"original":        gemini.SchemaString(""),
		"transliteration": gemini.SchemaString(""),
		"portuguese":      gemini.SchemaString(""),
		"polysemy":        gemini.SchemaString("Significado primário, secundários e uso metafórico. Mínimo 2 frases."),
		"etymology":       gemini.SchemaString("Raiz e origem histórica."),
		"grammar":         gemini.SchemaString("Análise morfológica completa."),
	}, "original", "transliteration", "portuguese", "polysemy", "etymology", "grammar")

	return gemini.SchemaObject(map[string]any{
		"hebrewGreekText": gemini.SchemaString("Versículo completo no original"),
		"phoneticText":    gemini.SchemaString("Transliteração completa da frase"),
		"words":           gemini.SchemaArray(word),
	}, "hebrewGreekText", "phoneticText", "words")
}

func epigraphPrompt(book string, chapter int) string {
	return fmt.Sprintf("Gere um Título e um Subtítulo curto e contextualizado para a EPÍGRAFE de %s %d. JSON: { title, subtitle }", book, chapter)
}

func epigraphSchema() map[string]any {
	return gemini.SchemaObject(map[string]any{
		"title":    gemini.SchemaString(""),
		"subtitle": gemini.SchemaString(""),
	}, "title", "subtitle")
}

func devotionalPrompt(displayDate, instruction string) string {
	return fmt.Sprintf(`Você é Michel Felix, teólogo Pentecostal Clássico. Crie um devocional PROFUNDO para %s.
%s

ESTRUTURA OBRIGATÓRIA (Mínimo 650 palavras):
1. TÍTULO impactante.
2. REFERÊNCIA BÍBLICA e VERSO CHAVE.
3. CORPO (Interpretação, Aplicação Prática, Conclusão). Linguagem acessível mas teologicamente rica.
4. ORAÇÃO final tocante.

Retorne JSON válido.`, displayDate, instruction)
}

func devotionalSchema() map[string]any {
	return gemini.SchemaObject(map[string]any{
		"title":      gemini.SchemaString(""),
		"reference":  gemini.SchemaString(""),
		"verse_text": gemini.SchemaString(""),
		"body":       gemini.SchemaString(""),
		"prayer":     gemini.SchemaString(""),
	}, "title", "reference", "verse_text", "body", "prayer")
}
