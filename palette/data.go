package palette

// Compiled-in palettes, keyed the way palettable names them.
func init() {
	// colorbrewer
	mustRegister("colorbrewer.sequential.Blues_9", Sequential,
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#08519c", "#08306b")
	mustRegister("colorbrewer.sequential.Greens_9", Sequential,
		"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#006d2c", "#00441b")
	mustRegister("colorbrewer.sequential.Greys_9", Sequential,
		"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696", "#737373", "#525252", "#252525", "#000000")
	mustRegister("colorbrewer.sequential.Oranges_9", Sequential,
		"#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c", "#f16913", "#d94801", "#a63603", "#7f2704")
	mustRegister("colorbrewer.sequential.Purples_9", Sequential,
		"#fcfbfd", "#efedf5", "#dadaeb", "#bcbddc", "#9e9ac8", "#807dba", "#6a51a3", "#54278f", "#3f007d")
	mustRegister("colorbrewer.sequential.Reds_9", Sequential,
		"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a", "#ef3b2c", "#cb181d", "#a50f15", "#67000d")
	mustRegister("colorbrewer.sequential.YlGnBu_9", Sequential,
		"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4", "#1d91c0", "#225ea8", "#253494", "#081d58")

	mustRegister("colorbrewer.diverging.PuOr_11", Diverging,
		"#7f3b08", "#b35806", "#e08214", "#fdb863", "#fee0b6", "#f7f7f7", "#d8daeb", "#b2abd2", "#8073ac", "#542788", "#2d004b")
	mustRegister("colorbrewer.diverging.RdBu_11", Diverging,
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061")
	mustRegister("colorbrewer.diverging.RdYlGn_11", Diverging,
		"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#d9ef8b", "#a6d96a", "#66bd63", "#1a9850", "#006837")
	mustRegister("colorbrewer.diverging.Spectral_11", Diverging,
		"#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2")

	mustRegister("colorbrewer.qualitative.Dark2_8", Qualitative,
		"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e", "#e6ab02", "#a6761d", "#666666")
	mustRegister("colorbrewer.qualitative.Paired_12", Qualitative,
		"#a6cee3", "#1f78b4", "#b2df8a", "#33a02c", "#fb9a99", "#e31a1c", "#fdbf6f", "#ff7f00", "#cab2d6", "#6a3d9a", "#ffff99", "#b15928")
	mustRegister("colorbrewer.qualitative.Pastel1_9", Qualitative,
		"#fbb4ae", "#b3cde3", "#ccebc5", "#decbe4", "#fed9a6", "#ffffcc", "#e5d8bd", "#fddaec", "#f2f2f2")
	mustRegister("colorbrewer.qualitative.Set1_9", Qualitative,
		"#e41a1c", "#377eb8", "#4daf4a", "#984ea3", "#ff7f00", "#ffff33", "#a65628", "#f781bf", "#999999")
	mustRegister("colorbrewer.qualitative.Set2_8", Qualitative,
		"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f", "#e5c494", "#b3b3b3")

	// cartocolors
	mustRegister("cartocolors.qualitative.Bold_5", Qualitative,
		"#7F3C8D", "#11A579", "#3969AC", "#F2B701", "#A5AA99")
	mustRegister("cartocolors.qualitative.Bold_10", Qualitative,
		"#7F3C8D", "#11A579", "#3969AC", "#F2B701", "#E73F74", "#80BA5A", "#E68310", "#008695", "#CF1C90", "#A5AA99")
	mustRegister("cartocolors.qualitative.Prism_10", Qualitative,
		"#5F4690", "#1D6996", "#38A6A5", "#0F8554", "#73AF48", "#EDAD08", "#E17C05", "#CC503E", "#94346E", "#666666")
	mustRegister("cartocolors.qualitative.Safe_10", Qualitative,
		"#88CCEE", "#CC6677", "#DDCC77", "#117733", "#332288", "#AA4499", "#44AA99", "#999933", "#882255", "#888888")
	mustRegister("cartocolors.qualitative.Vivid_10", Qualitative,
		"#E58606", "#5D69B1", "#52BCA3", "#99C945", "#CC61B0", "#24796C", "#DAA51B", "#2F8AC4", "#764E9F", "#A5AA99")

	mustRegister("cartocolors.sequential.Magenta_7", Sequential,
		"#f3cbd3", "#eaa9bd", "#dd88ac", "#ca699d", "#b14d8e", "#91357d", "#6c2167")
	mustRegister("cartocolors.sequential.Mint_7", Sequential,
		"#e4f1e1", "#b4d9cc", "#89c0b6", "#63a6a0", "#448c8a", "#287274", "#0d585f")
	mustRegister("cartocolors.sequential.Sunset_7", Sequential,
		"#f3e79b", "#fac484", "#f8a07e", "#eb7f86", "#ce6693", "#a059a0", "#5c53a5")
	mustRegister("cartocolors.sequential.Teal_7", Sequential,
		"#d1eeea", "#a8dbd9", "#85c4c9", "#68abb8", "#4f90a6", "#3b738f", "#2a5674")

	// tableau
	mustRegister("tableau.Tableau_10", Qualitative,
		"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD", "#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF")

	// matplotlib perceptual colormaps, 10 stops each
	mustRegister("matplotlib.Inferno_10", Sequential,
		"#000004", "#1b0c41", "#4a0c6b", "#781c6d", "#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#f7d13d", "#fcffa4")
	mustRegister("matplotlib.Plasma_10", Sequential,
		"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90", "#cc4778", "#e16462", "#f2844b", "#fca636", "#fcce25")
	mustRegister("matplotlib.Viridis_10", Sequential,
		"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725")
}
